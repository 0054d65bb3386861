package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturador/internal/application/billing"
	"github.com/jhoicas/facturador/internal/application/dto"
)

// InvoiceHandler maneja creación, historial y exportación de facturas.
type InvoiceHandler struct {
	create  *billing.CreateInvoiceUseCase
	history *billing.HistoryUseCase
	export  *billing.ExportUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(
	create *billing.CreateInvoiceUseCase,
	history *billing.HistoryUseCase,
	export *billing.ExportUseCase,
) *InvoiceHandler {
	return &InvoiceHandler{create: create, history: history, export: export}
}

// Create crea una factura a partir del carrito.
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.create.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PreviewTotals calcula el desglose de un borrador sin persistirlo.
func (h *InvoiceHandler) PreviewTotals(c *fiber.Ctx) error {
	var in dto.PreviewTotalsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.create.PreviewTotals(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List devuelve el historial (más recientes primero). Con ?q= filtra por
// número de factura o nombre del comprador.
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.history.Search(c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID devuelve una factura del historial.
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.history.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una factura del historial.
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.history.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Export genera el documento descargable. El formato va en query:
// ?format=png|jpg|pdf|pdf-native (default pdf).
func (h *InvoiceHandler) Export(c *fiber.Ctx) error {
	format := c.Query("format", "pdf")
	result, err := h.export.Export(c.Params("id"), format)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, result.MIME)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	return c.Send(result.Data)
}
