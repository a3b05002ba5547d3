package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/m04kA/SMC-StayService/pkg/validation"
)

const (
	msgInternalError  = "внутренняя ошибка сервера"
	msgValidation     = "некорректные входные данные"
	maxRequestBodyLen = 1 << 20
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Details []validation.Violation `json:"details,omitempty"`
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку с произвольным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondValidationError 400 со списком нарушений.
// Если в цепочке err нет validation.Violations, отдаёт только сообщение
func RespondValidationError(w http.ResponseWriter, err error) {
	var violations validation.Violations
	if errors.As(err, &violations) {
		RespondJSON(w, http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: msgValidation,
			Details: violations,
		})
		return
	}
	RespondBadRequest(w, msgValidation)
}

// DecodeJSON декодирует тело запроса; неизвестные поля и мусор после объекта - ошибка
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyLen))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	if decoder.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// DecodeAndValidate DecodeJSON + проверка validate-тегов DTO
func DecodeAndValidate(r *http.Request, dst interface{}) (validation.Violations, error) {
	if err := DecodeJSON(r, dst); err != nil {
		return nil, err
	}
	return validation.Struct(dst), nil
}
