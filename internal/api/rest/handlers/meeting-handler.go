package handlers

import (
	"github.com/findhomy/backend/internal/api/rest/middleware"
	"github.com/findhomy/backend/internal/dto"
	"github.com/findhomy/backend/internal/helper"
	"github.com/findhomy/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type MeetingHandler struct {
	svc  services.MeetingService
	auth helper.Auth
}

func NewMeetingHandler(svc services.MeetingService, auth helper.Auth) *MeetingHandler {
	return &MeetingHandler{svc: svc, auth: auth}
}

func (h *MeetingHandler) SetupRoutes(app *fiber.App) {
	authd := middleware.AuthMiddleware(h.auth)
	userOnly := middleware.RequireUser(h.auth)

	app.Post("/properties/:propertyId/meetings", authd, userOnly, h.Create)
	app.Get("/properties/:propertyId/meetings", authd, userOnly, h.ListForProperty)
	app.Get("/users/me/meetings", authd, userOnly, h.ListForUser)
	app.Get("/meetings/:meetingId", authd, userOnly, h.Get)
	app.Patch("/meetings/:meetingId", authd, userOnly, h.Update)
	app.Delete("/meetings/:meetingId", authd, userOnly, h.Delete)
}

func (h *MeetingHandler) Create(ctx *fiber.Ctx) error {
	propertyID, apiErr := helper.ParseIDParam(ctx.Params("propertyId"))
	if apiErr != nil {
		return apiErr
	}

	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return helper.ErrUnauthorized("Unauthorized")
	}

	body := bodyJSON(ctx, nil)
	if err := helper.RequiredParams(body, map[string]helper.ParamKind{
		"type": helper.ParamString,
		"date": helper.ParamString,
	}); err != nil {
		return err
	}

	var input dto.MeetingCreate
	if err := unmarshalBody(body, &input); err != nil {
		return err
	}

	meeting, err := h.svc.CreateMeeting(claims.SubjectID, propertyID, input)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": meeting.ID})
}

func (h *MeetingHandler) ListForProperty(ctx *fiber.Ctx) error {
	propertyID, apiErr := helper.ParseIDParam(ctx.Params("propertyId"))
	if apiErr != nil {
		return apiErr
	}

	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return helper.ErrUnauthorized("Unauthorized")
	}

	meetings, err := h.svc.ListPropertyMeetings(claims.SubjectID, propertyID)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"meetings": meetings})
}

func (h *MeetingHandler) ListForUser(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return helper.ErrUnauthorized("Unauthorized")
	}

	meetings, err := h.svc.ListUserMeetings(claims.SubjectID)
	if err != nil {
		return err
	}
	return ctx.JSON(meetings)
}

func (h *MeetingHandler) Get(ctx *fiber.Ctx) error {
	meetingID, apiErr := helper.ParseIDParam(ctx.Params("meetingId"))
	if apiErr != nil {
		return apiErr
	}

	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return helper.ErrUnauthorized("Unauthorized")
	}

	meeting, err := h.svc.GetMeeting(claims.SubjectID, meetingID)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"meeting": meeting})
}

func (h *MeetingHandler) Update(ctx *fiber.Ctx) error {
	meetingID, apiErr := helper.ParseIDParam(ctx.Params("meetingId"))
	if apiErr != nil {
		return apiErr
	}

	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return helper.ErrUnauthorized("Unauthorized")
	}

	var input dto.MeetingUpdate
	if err := unmarshalBody(bodyJSON(ctx, nil), &input); err != nil {
		return err
	}

	if err := h.svc.UpdateMeeting(claims.SubjectID, meetingID, input); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (h *MeetingHandler) Delete(ctx *fiber.Ctx) error {
	meetingID, apiErr := helper.ParseIDParam(ctx.Params("meetingId"))
	if apiErr != nil {
		return apiErr
	}

	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return helper.ErrUnauthorized("Unauthorized")
	}

	if err := h.svc.DeleteMeeting(claims.SubjectID, meetingID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
