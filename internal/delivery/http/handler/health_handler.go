package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zone-enrichment/internal/geoindex"
	"github.com/zone-enrichment/internal/usecase/dto"
)

// HealthHandler reports which indexes the process has loaded.
type HealthHandler struct {
	registry *geoindex.Registry
}

func NewHealthHandler(registry *geoindex.Registry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Health godoc
// @Summary Service health and loaded indexes
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		OK:          true,
		ZonesLoaded: h.registry.Sectors(),
	}
	if h.registry.Freguesias != nil {
		resp.FreguesiaLoaded = true
		resp.FreguesiaPolygon = h.registry.Freguesias.Len()
	}
	return c.JSON(resp)
}
