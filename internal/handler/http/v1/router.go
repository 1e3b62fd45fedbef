package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты сервиса от корня
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	// Маршрут Health-check
	r.GET("/health/", h.healthCheck)

	// Импорт данных; закрыт API-ключом, если ключи заданы
	injection := r.Group("/data-injection")
	if len(h.cfg.APIKeys) > 0 {
		injection.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	{
		injection.POST("/import-lga", h.importLGA)
		injection.POST("/import-incident/:lga_id/:type", h.importIncident)
	}

	// Пространственный поиск
	r.POST("/findPlaces", h.findPlaces)
	r.POST("/findPlaces/coordinates", h.findPlacesByCoordinates)
	r.POST("/findPlaces/polygon", h.findPlacesByPolygon)
	r.POST("/find-incidents", h.findIncidents)
}
