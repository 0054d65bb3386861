package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturador/internal/application/dto"
	"github.com/jhoicas/facturador/internal/application/usecase"
)

// CompanyHandler maneja el perfil de empresa de la instalación.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Get devuelve el perfil configurado; 404 si todavía no existe.
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Save crea o reemplaza el perfil.
func (h *CompanyHandler) Save(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Save(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
