package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturador/internal/application/dto"
	"github.com/jhoicas/facturador/internal/application/usecase"
	"github.com/jhoicas/facturador/internal/infrastructure/render"
)

// DashboardHandler estadísticas y catálogo de plantillas.
type DashboardHandler struct {
	uc       *usecase.DashboardUseCase
	registry *render.Registry
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase, registry *render.Registry) *DashboardHandler {
	return &DashboardHandler{uc: uc, registry: registry}
}

// Stats devuelve los contadores y el ingreso acumulado.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Templates lista las plantillas visuales en orden de presentación.
func (h *DashboardHandler) Templates(c *fiber.Ctx) error {
	all := h.registry.All()
	out := dto.TemplateListResponse{Items: make([]dto.TemplateResponse, 0, len(all))}
	for _, tmpl := range all {
		out.Items = append(out.Items, dto.TemplateResponse{
			ID:          tmpl.ID(),
			Name:        tmpl.Name(),
			Description: tmpl.Description(),
		})
	}
	return c.JSON(out)
}
