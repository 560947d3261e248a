package handler

import (
	"errors"
	"fmt"
	"time"

	"go-inventory-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetReport returns one of the reports as JSON
// GET /api/v1/reports/:type
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	r, err := h.service.Generate(c.Params("type"))
	if err != nil {
		return h.reportError(c, err)
	}
	return c.JSON(r)
}

// GetReportPDF streams the report as a PDF attachment
// GET /api/v1/reports/:type/pdf
func (h *ReportHandler) GetReportPDF(c *fiber.Ctx) error {
	kind := c.Params("type")
	pdf, err := h.service.PDF(kind)
	if err != nil {
		return h.reportError(c, err)
	}

	filename := fmt.Sprintf("%s-report-%s.pdf", kind, time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

func (h *ReportHandler) reportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrUnknownReport) {
		return c.Status(404).JSON(fiber.Map{"error": err.Error(), "available": service.ReportKinds})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Failed to generate report"})
}
