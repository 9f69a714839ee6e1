package handlers

import (
	"github.com/findhomy/backend/internal/api/rest/middleware"
	"github.com/findhomy/backend/internal/dto"
	"github.com/findhomy/backend/internal/helper"
	"github.com/findhomy/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	svc  services.ReportService
	auth helper.Auth
}

func NewReportHandler(svc services.ReportService, auth helper.Auth) *ReportHandler {
	return &ReportHandler{svc: svc, auth: auth}
}

func (h *ReportHandler) SetupRoutes(app *fiber.App) {
	authd := middleware.AuthMiddleware(h.auth)
	userOnly := middleware.RequireUser(h.auth)

	app.Post("/users/:userId/reports", authd, userOnly, h.ReportUser)
	app.Post("/comments/:commentId/reports", authd, userOnly, h.ReportComment)
}

func (h *ReportHandler) ReportUser(ctx *fiber.Ctx) error {
	reportedUserID, apiErr := helper.ParseIDParam(ctx.Params("userId"))
	if apiErr != nil {
		return apiErr
	}

	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return helper.ErrUnauthorized("Unauthorized")
	}

	input, err := parseReportBody(ctx)
	if err != nil {
		return err
	}

	report, err := h.svc.ReportUser(claims.SubjectID, reportedUserID, input)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": report.ID})
}

func (h *ReportHandler) ReportComment(ctx *fiber.Ctx) error {
	commentID, apiErr := helper.ParseIDParam(ctx.Params("commentId"))
	if apiErr != nil {
		return apiErr
	}

	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return helper.ErrUnauthorized("Unauthorized")
	}

	input, err := parseReportBody(ctx)
	if err != nil {
		return err
	}

	report, err := h.svc.ReportComment(claims.SubjectID, commentID, input)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": report.ID})
}

func parseReportBody(ctx *fiber.Ctx) (dto.ReportCreate, error) {
	var input dto.ReportCreate

	body := bodyJSON(ctx, nil)
	if err := helper.RequiredParams(body, map[string]helper.ParamKind{
		"reason": helper.ParamString,
	}); err != nil {
		return input, err
	}
	if err := unmarshalBody(body, &input); err != nil {
		return input, err
	}
	return input, nil
}
