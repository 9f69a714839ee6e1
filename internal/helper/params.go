package helper

import (
	"encoding/json"
	"fmt"
)

type ParamKind string

const (
	ParamString ParamKind = "string"
	ParamNumber ParamKind = "number"
)

// RequiredParams is the pre-flight body check: every listed field must be
// present with the right primitive type before storage is touched. All
// violations are reported together. A body that does not decode at all is
// treated as empty so each required field shows up in the response.
func RequiredParams(body []byte, required map[string]ParamKind) *APIError {
	raw := map[string]interface{}{}
	if len(body) > 0 {
		_ = json.Unmarshal(body, &raw)
	}

	fieldErrors := map[string]string{}
	for field, kind := range required {
		value, ok := raw[field]
		if !ok || value == nil {
			fieldErrors[field] = fmt.Sprintf("'%s' is required", field)
			continue
		}
		switch kind {
		case ParamString:
			if _, ok := value.(string); !ok {
				fieldErrors[field] = fmt.Sprintf("'%s' must be a string", field)
			}
		case ParamNumber:
			if _, ok := value.(float64); !ok {
				fieldErrors[field] = fmt.Sprintf("'%s' must be a number", field)
			}
		}
	}

	if len(fieldErrors) > 0 {
		return ErrUnprocessable("Missing or invalid parameters", fieldErrors)
	}
	return nil
}
