package handlers

import (
	"github.com/findhomy/backend/internal/api/rest/middleware"
	"github.com/findhomy/backend/internal/dto"
	"github.com/findhomy/backend/internal/helper"
	"github.com/findhomy/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// propertyNumericFields are the body fields coerced from multipart form
// strings before the type check runs.
var propertyNumericFields = map[string]bool{
	"bathrooms":    true,
	"bedrooms":     true,
	"size":         true,
	"streetNumber": true,
	"price":        true,
}

type PropertyHandler struct {
	svc  services.PropertyService
	auth helper.Auth
}

func NewPropertyHandler(svc services.PropertyService, auth helper.Auth) *PropertyHandler {
	return &PropertyHandler{svc: svc, auth: auth}
}

func (h *PropertyHandler) SetupRoutes(app *fiber.App) {
	authd := middleware.AuthMiddleware(h.auth)
	userOnly := middleware.RequireUser(h.auth)

	app.Get("/properties", h.List)
	app.Post("/properties", authd, userOnly, h.Create)
	app.Get("/properties/:propertyId", h.Get)
	app.Patch("/properties/:propertyId", authd, userOnly, h.Update)
	app.Delete("/properties/:propertyId", authd, userOnly, h.Delete)
}

func (h *PropertyHandler) List(ctx *fiber.Ctx) error {
	properties, err := h.svc.ListProperties()
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"properties": properties})
}

func (h *PropertyHandler) Get(ctx *fiber.Ctx) error {
	propertyID, apiErr := helper.ParseIDParam(ctx.Params("propertyId"))
	if apiErr != nil {
		return apiErr
	}

	property, err := h.svc.GetProperty(propertyID)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"property": property})
}

func (h *PropertyHandler) Create(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return helper.ErrUnauthorized("Unauthorized")
	}

	body := bodyJSON(ctx, propertyNumericFields)
	if err := helper.RequiredParams(body, map[string]helper.ParamKind{
		"title":       helper.ParamString,
		"type":        helper.ParamString,
		"region":      helper.ParamString,
		"commune":     helper.ParamString,
		"street":      helper.ParamString,
		"price":       helper.ParamNumber,
		"listingType": helper.ParamString,
	}); err != nil {
		return err
	}

	var input dto.PropertyCreate
	if err := unmarshalBody(body, &input); err != nil {
		return err
	}

	property, err := h.svc.CreateProperty(claims.SubjectID, input, formFile(ctx, "imageFile"))
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": property.ID})
}

func (h *PropertyHandler) Update(ctx *fiber.Ctx) error {
	propertyID, apiErr := helper.ParseIDParam(ctx.Params("propertyId"))
	if apiErr != nil {
		return apiErr
	}

	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return helper.ErrUnauthorized("Unauthorized")
	}

	var input dto.PropertyUpdate
	if err := unmarshalBody(bodyJSON(ctx, propertyNumericFields), &input); err != nil {
		return err
	}

	if err := h.svc.UpdateProperty(claims.SubjectID, propertyID, input, formFile(ctx, "imageFile")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (h *PropertyHandler) Delete(ctx *fiber.Ctx) error {
	propertyID, apiErr := helper.ParseIDParam(ctx.Params("propertyId"))
	if apiErr != nil {
		return apiErr
	}

	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return helper.ErrUnauthorized("Unauthorized")
	}

	if err := h.svc.DeleteProperty(claims.SubjectID, propertyID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
