package handlers

import (
	"github.com/findhomy/backend/internal/api/rest/middleware"
	"github.com/findhomy/backend/internal/dto"
	"github.com/findhomy/backend/internal/helper"
	"github.com/findhomy/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	svc     services.UserService
	authSvc services.AuthService
	auth    helper.Auth
}

func NewUserHandler(svc services.UserService, authSvc services.AuthService, auth helper.Auth) *UserHandler {
	return &UserHandler{svc: svc, authSvc: authSvc, auth: auth}
}

func (h *UserHandler) SetupRoutes(app *fiber.App) {
	authd := middleware.AuthMiddleware(h.auth)
	userOnly := middleware.RequireUser(h.auth)

	app.Post("/users", h.Register)
	app.Post("/auth", h.Login)
	app.Get("/users/me", authd, userOnly, h.Me)
	app.Patch("/users/:userId", authd, userOnly, h.Update)
}

func (h *UserHandler) Register(ctx *fiber.Ctx) error {
	body := bodyJSON(ctx, nil)
	if err := helper.RequiredParams(body, map[string]helper.ParamKind{
		"firstName": helper.ParamString,
		"lastName":  helper.ParamString,
		"email":     helper.ParamString,
		"password":  helper.ParamString,
	}); err != nil {
		return err
	}

	var input dto.UserSignup
	if err := unmarshalBody(body, &input); err != nil {
		return err
	}

	user, err := h.svc.Register(input)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(dto.UserCreated{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	})
}

func (h *UserHandler) Login(ctx *fiber.Ctx) error {
	var input dto.LoginRequest
	if err := ctx.BodyParser(&input); err != nil {
		return helper.ErrUnauthorized("Incorrect email or password")
	}

	token, err := h.authSvc.Login(input.Email, input.Password)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(dto.TokenResponse{Token: token})
}

func (h *UserHandler) Me(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return helper.ErrUnauthorized("Unauthorized")
	}

	user, err := h.svc.GetUser(claims.SubjectID)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"user": user})
}

func (h *UserHandler) Update(ctx *fiber.Ctx) error {
	userID, apiErr := helper.ParseIDParam(ctx.Params("userId"))
	if apiErr != nil {
		return apiErr
	}

	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil || claims.SubjectID != userID {
		return helper.ErrUnauthorized("Unauthorized")
	}

	var input dto.UserUpdate
	if err := unmarshalBody(bodyJSON(ctx, nil), &input); err != nil {
		return err
	}

	if err := h.svc.UpdateUser(userID, input, formFile(ctx, "avatarFile")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
