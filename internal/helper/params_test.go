package helper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredParamsAllPresent(t *testing.T) {
	body := []byte(`{"title":"Cabin by the lake","price":120000}`)
	err := RequiredParams(body, map[string]ParamKind{
		"title": ParamString,
		"price": ParamNumber,
	})
	assert.Nil(t, err)
}

func TestRequiredParamsReportsEveryViolation(t *testing.T) {
	body := []byte(`{"title":123,"price":"cheap"}`)
	err := RequiredParams(body, map[string]ParamKind{
		"title":  ParamString,
		"price":  ParamNumber,
		"region": ParamString,
	})
	require.NotNil(t, err)
	assert.Equal(t, 422, err.Status)
	assert.Equal(t, "'title' must be a string", err.Errors["title"])
	assert.Equal(t, "'price' must be a number", err.Errors["price"])
	assert.Equal(t, "'region' is required", err.Errors["region"])
}

func TestRequiredParamsNullCountsAsMissing(t *testing.T) {
	body := []byte(`{"title":null}`)
	err := RequiredParams(body, map[string]ParamKind{"title": ParamString})
	require.NotNil(t, err)
	assert.Equal(t, "'title' is required", err.Errors["title"])
}

func TestRequiredParamsUndecodableBody(t *testing.T) {
	err := RequiredParams([]byte(`{{nope`), map[string]ParamKind{
		"title": ParamString,
		"price": ParamNumber,
	})
	require.NotNil(t, err)
	assert.Len(t, err.Errors, 2)
}

func TestParseIDParam(t *testing.T) {
	id, apiErr := ParseIDParam("17")
	require.Nil(t, apiErr)
	assert.Equal(t, uint(17), id)

	for _, raw := range []string{"0", "-3", "abc", "1.5", ""} {
		_, apiErr := ParseIDParam(raw)
		require.NotNil(t, apiErr, "id %q should be rejected", raw)
		assert.Equal(t, 400, apiErr.Status)
		assert.Equal(t, "Invalid parameter in request: '"+raw+"'", apiErr.Message)
	}
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, IsDuplicateKey(errors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, IsDuplicateKey(errors.New("record not found")))
	assert.False(t, IsDuplicateKey(nil))
}
