package http

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"memnotes/internal/notes/adapters/http/notes"
	"memnotes/internal/notes/config"
)

// Route описывает один маршрут API заметок.
type Route struct {
	Methods []string
	Path    string
	Handler fiber.Handler
}

// RouteSet - набор маршрутов API заметок относительно базового пути.
type RouteSet []Route

// RESTRoutes возвращает ресурсный набор маршрутов.
func RESTRoutes(h *notes.Handler) RouteSet {
	return RouteSet{
		{Methods: []string{fiber.MethodGet}, Path: "/", Handler: h.ListNotes},
		{Methods: []string{fiber.MethodGet}, Path: "/my", Handler: h.ListMyNotes},
		{Methods: []string{fiber.MethodPost}, Path: "/", Handler: h.CreateNote},
		{Methods: []string{fiber.MethodGet}, Path: "/:" + notes.ParamID, Handler: h.GetNote},
		{Methods: []string{fiber.MethodPut, fiber.MethodPatch}, Path: "/:" + notes.ParamID, Handler: h.UpdateNote},
		{Methods: []string{fiber.MethodDelete}, Path: "/:" + notes.ParamID, Handler: h.DeleteNote},
	}
}

// LegacyRoutes возвращает набор маршрутов с путями прежнего API.
func LegacyRoutes(h *notes.Handler) RouteSet {
	return RouteSet{
		{Methods: []string{fiber.MethodGet}, Path: "/list/:" + notes.ParamListType, Handler: h.ListByType},
		{Methods: []string{fiber.MethodPost}, Path: "/add", Handler: h.CreateNote},
		{Methods: []string{fiber.MethodGet}, Path: "/:" + notes.ParamID, Handler: h.GetNote},
		{Methods: []string{fiber.MethodPut}, Path: "/:" + notes.ParamID + "/update", Handler: h.UpdateNote},
		{Methods: []string{fiber.MethodDelete}, Path: "/delete/:" + notes.ParamID, Handler: h.DeleteNote},
	}
}

// RoutesFor выбирает набор маршрутов по имени из конфигурации.
func RoutesFor(name string, h *notes.Handler) (RouteSet, error) {
	switch name {
	case config.RoutesREST:
		return RESTRoutes(h), nil
	case config.RoutesLegacy:
		return LegacyRoutes(h), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownRoutes, name)
	}
}

// Register регистрирует маршруты набора в router.
func (rs RouteSet) Register(router fiber.Router) {
	for _, route := range rs {
		for _, method := range route.Methods {
			switch method {
			case fiber.MethodGet:
				router.Get(route.Path, route.Handler)
			case fiber.MethodPost:
				router.Post(route.Path, route.Handler)
			case fiber.MethodPut:
				router.Put(route.Path, route.Handler)
			case fiber.MethodPatch:
				router.Patch(route.Path, route.Handler)
			case fiber.MethodDelete:
				router.Delete(route.Path, route.Handler)
			}
		}
	}
}
