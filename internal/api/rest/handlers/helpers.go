package handlers

import (
	"encoding/json"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/findhomy/backend/internal/helper"
	"github.com/gofiber/fiber/v2"
)

// bodyJSON flattens the request body to JSON bytes whether the client sent
// application/json or multipart/form-data. Multipart form values arrive as
// strings, so fields listed in numericFields are coerced to numbers; that
// keeps the pre-flight type check honest for both content types.
func bodyJSON(ctx *fiber.Ctx, numericFields map[string]bool) []byte {
	if !strings.HasPrefix(ctx.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return ctx.Body()
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return nil
	}

	fields := map[string]interface{}{}
	for key, values := range form.Value {
		if len(values) == 0 {
			continue
		}
		raw := values[0]
		if numericFields[key] {
			if n, err := strconv.ParseFloat(raw, 64); err == nil {
				fields[key] = n
				continue
			}
			// leave it a string so the type check reports it
		}
		fields[key] = raw
	}

	b, err := json.Marshal(fields)
	if err != nil {
		return nil
	}
	return b
}

// unmarshalBody decodes the flattened body, tolerating an absent one
// (PATCH with only a file part, DELETE with no body).
func unmarshalBody(body []byte, out interface{}) error {
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return helper.ErrUnprocessable("Could not parse request body", nil)
	}
	return nil
}

// formFile returns the named upload if the request carries one.
func formFile(ctx *fiber.Ctx, name string) *multipart.FileHeader {
	file, err := ctx.FormFile(name)
	if err != nil {
		return nil
	}
	return file
}
