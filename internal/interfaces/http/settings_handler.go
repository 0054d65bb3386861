package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturador/internal/application/dto"
	"github.com/jhoicas/facturador/internal/application/usecase"
	"github.com/jhoicas/facturador/pkg/currency"
)

// SettingsHandler maneja la configuración de facturación.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get devuelve la configuración vigente (guardada o defaults).
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update aplica cambios parciales a la configuración.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Currencies lista las monedas soportadas con sus símbolos.
func (h *SettingsHandler) Currencies(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"items": currency.Supported})
}

// TaxRates devuelve las tarifas sugeridas para una moneda (GST para INR).
func (h *SettingsHandler) TaxRates(c *fiber.Ctx) error {
	code := c.Query("currency", "USD")
	return c.JSON(fiber.Map{
		"currency": code,
		"items":    currency.RatesFor(code),
	})
}
