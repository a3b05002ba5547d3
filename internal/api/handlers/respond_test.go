package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m04kA/SMC-StayService/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "не найдено")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 404, body.Code)
	assert.Equal(t, "не найдено", body.Message)
	assert.Empty(t, body.Details)
}

func TestRespondValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	err := fmt.Errorf("usecase: invalid input: %w", validation.Violations{{Field: "checkOut", Message: "must be after checkIn"}})
	RespondValidationError(rec, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Details, 1)
	assert.Equal(t, "checkOut", body.Details[0].Field)

	rec = httptest.NewRecorder()
	RespondValidationError(rec, fmt.Errorf("plain"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Amount float64 `json:"amount" validate:"gte=0"`
	}

	var p payload
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount": 10}`))
	require.NoError(t, DecodeJSON(req, &p))
	assert.Equal(t, 10.0, p.Amount)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount": 10, "extra": 1}`))
	assert.Error(t, DecodeJSON(req, &p))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount": 1}{"amount": 2}`))
	assert.Error(t, DecodeJSON(req, &p))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"amount": -1}`))
	violations, err := DecodeAndValidate(req, &p)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "amount", violations[0].Field)
}
