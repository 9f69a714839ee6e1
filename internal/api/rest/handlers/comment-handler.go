package handlers

import (
	"github.com/findhomy/backend/internal/api/rest/middleware"
	"github.com/findhomy/backend/internal/dto"
	"github.com/findhomy/backend/internal/helper"
	"github.com/findhomy/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CommentHandler struct {
	svc  services.CommentService
	auth helper.Auth
}

func NewCommentHandler(svc services.CommentService, auth helper.Auth) *CommentHandler {
	return &CommentHandler{svc: svc, auth: auth}
}

func (h *CommentHandler) SetupRoutes(app *fiber.App) {
	authd := middleware.AuthMiddleware(h.auth)
	userOnly := middleware.RequireUser(h.auth)

	app.Get("/properties/:propertyId/comments", h.List)
	app.Post("/properties/:propertyId/comments", authd, userOnly, h.Create)
	app.Get("/properties/:propertyId/comments/:commentId", h.Get)
	app.Patch("/properties/:propertyId/comments/:commentId", authd, userOnly, h.Update)
	app.Delete("/properties/:propertyId/comments/:commentId", authd, userOnly, h.Delete)
}

func (h *CommentHandler) List(ctx *fiber.Ctx) error {
	propertyID, apiErr := helper.ParseIDParam(ctx.Params("propertyId"))
	if apiErr != nil {
		return apiErr
	}

	comments, err := h.svc.ListComments(propertyID)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"comments": comments})
}

func (h *CommentHandler) Get(ctx *fiber.Ctx) error {
	propertyID, commentID, apiErr := commentParams(ctx)
	if apiErr != nil {
		return apiErr
	}

	comment, err := h.svc.GetComment(propertyID, commentID)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"comment": comment})
}

func (h *CommentHandler) Create(ctx *fiber.Ctx) error {
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
		"body": helper.ParamString,
	}); err != nil {
		return err
	}

	var input dto.CommentCreate
	if err := unmarshalBody(body, &input); err != nil {
		return err
	}

	comment, err := h.svc.CreateComment(claims.SubjectID, propertyID, input)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": comment.ID})
}

func (h *CommentHandler) Update(ctx *fiber.Ctx) error {
	propertyID, commentID, apiErr := commentParams(ctx)
	if apiErr != nil {
		return apiErr
	}

	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return helper.ErrUnauthorized("Unauthorized")
	}

	var input dto.CommentUpdate
	if err := unmarshalBody(bodyJSON(ctx, nil), &input); err != nil {
		return err
	}

	if err := h.svc.UpdateComment(claims.SubjectID, propertyID, commentID, input); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (h *CommentHandler) Delete(ctx *fiber.Ctx) error {
	propertyID, commentID, apiErr := commentParams(ctx)
	if apiErr != nil {
		return apiErr
	}

	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return helper.ErrUnauthorized("Unauthorized")
	}

	if err := h.svc.DeleteComment(claims.SubjectID, propertyID, commentID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func commentParams(ctx *fiber.Ctx) (uint, uint, *helper.APIError) {
	propertyID, apiErr := helper.ParseIDParam(ctx.Params("propertyId"))
	if apiErr != nil {
		return 0, 0, apiErr
	}
	commentID, apiErr := helper.ParseIDParam(ctx.Params("commentId"))
	if apiErr != nil {
		return 0, 0, apiErr
	}
	return propertyID, commentID, nil
}
