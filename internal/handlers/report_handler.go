package handlers

import (
	"errors"
	"log"
	"time"

	"kedaikopi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles HTTP requests for sales reports.
type ReportHandler struct {
	service *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

// RegisterAdminRoutes registers the report route; reports live in the admin
// area, so the caller mounts these behind the auth middleware.
func (h *ReportHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/reports", h.HandleReport)
}

// HandleReport serves the orders, products or categories report, optionally
// restricted to a single day (?date=2006-01-02).
func (h *ReportHandler) HandleReport(c *fiber.Ctx) error {
	// No type param means the orders report, the admin page's landing view.
	kind := c.Query("type", services.ReportOrders)

	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid date, expected YYYY-MM-DD",
			})
		}
		date = &parsed
	}

	result, err := h.service.Report(kind, date)
	if err != nil {
		log.Printf("Error building %s report: %v", kind, err)
		status := fiber.StatusInternalServerError
		if errors.Is(err, services.ErrInvalidReportKind) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	resp := fiber.Map{
		"success": true,
		"summary": result.Summary,
	}
	switch result.Kind {
	case services.ReportOrders:
		resp["orders"] = result.Orders
	case services.ReportProducts:
		resp["products"] = result.Products
	case services.ReportCategories:
		resp["categories"] = result.Categories
	}
	return c.JSON(resp)
}
