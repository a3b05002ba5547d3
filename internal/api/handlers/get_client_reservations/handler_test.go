package get_client_reservations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	"github.com/m04kA/SMC-StayService/internal/service/reservations"
	"github.com/m04kA/SMC-StayService/internal/service/reservations/models"
)

type fakeService struct {
	got *models.GetClientReservationsRequest
	err error
}

func (f *fakeService) GetClientReservations(_ context.Context, req *models.GetClientReservationsRequest, _ models.Actor) (*models.ReservationListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationListResponse{Reservations: []models.ReservationResponse{{ID: 1, ClientID: req.ClientID}}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/clients/{clientId}/reservations", h.Handle).Methods(http.MethodGet)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(middleware.WithUser(req.Context(), 7, middleware.RoleClient))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_WithStatusFilter(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}), "/api/v1/clients/7/reservations?status=checked_out")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.got.ClientID)
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "checked_out", *svc.got.Status)

	var body models.ReservationListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body.Reservations, 1)
}

func TestHandle_NoStatus(t *testing.T) {
	svc := &fakeService{}
	serve(NewHandler(svc, nopLogger{}), "/api/v1/clients/7/reservations")
	assert.Nil(t, svc.got.Status)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		err      error
		wantCode int
	}{
		{"bad id", "/api/v1/clients/me/reservations", nil, http.StatusBadRequest},
		{"foreign client", "/api/v1/clients/8/reservations", reservations.ErrAccessDenied, http.StatusForbidden},
		{"bad status", "/api/v1/clients/7/reservations?status=lost", fmt.Errorf("%w: invalid status", reservations.ErrInvalidInput), http.StatusBadRequest},
		{"internal", "/api/v1/clients/7/reservations", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeService{err: tt.err}, nopLogger{}), tt.target)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
