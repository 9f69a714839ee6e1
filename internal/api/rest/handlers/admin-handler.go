package handlers

import (
	"github.com/findhomy/backend/internal/api/rest/middleware"
	"github.com/findhomy/backend/internal/helper"
	"github.com/findhomy/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	svc  services.AdminService
	auth helper.Auth
}

func NewAdminHandler(svc services.AdminService, auth helper.Auth) *AdminHandler {
	return &AdminHandler{svc: svc, auth: auth}
}

func (h *AdminHandler) SetupRoutes(app *fiber.App) {
	authd := middleware.AuthMiddleware(h.auth)
	adminOnly := middleware.RequireAdmin(h.auth)

	admin := app.Group("/admin", authd, adminOnly)
	admin.Get("/reports", h.ListReports)
	admin.Delete("/users/:userId", h.DeleteUser)
	admin.Delete("/properties/:propertyId", h.DeleteProperty)
	admin.Delete("/properties/:propertyId/comments/:commentId", h.DeleteComment)
}

func (h *AdminHandler) ListReports(ctx *fiber.Ctx) error {
	reports, err := h.svc.ListReports()
	if err != nil {
		return err
	}
	return ctx.JSON(reports)
}

func (h *AdminHandler) DeleteUser(ctx *fiber.Ctx) error {
	userID, apiErr := helper.ParseIDParam(ctx.Params("userId"))
	if apiErr != nil {
		return apiErr
	}

	if err := h.svc.DeleteUser(userID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (h *AdminHandler) DeleteProperty(ctx *fiber.Ctx) error {
	propertyID, apiErr := helper.ParseIDParam(ctx.Params("propertyId"))
	if apiErr != nil {
		return apiErr
	}

	if err := h.svc.DeleteProperty(propertyID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (h *AdminHandler) DeleteComment(ctx *fiber.Ctx) error {
	propertyID, apiErr := helper.ParseIDParam(ctx.Params("propertyId"))
	if apiErr != nil {
		return apiErr
	}
	commentID, apiErr := helper.ParseIDParam(ctx.Params("commentId"))
	if apiErr != nil {
		return apiErr
	}

	if err := h.svc.DeleteComment(propertyID, commentID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
