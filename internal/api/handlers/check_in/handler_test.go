package check_in

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	"github.com/m04kA/SMC-StayService/internal/service/reservations"
	"github.com/m04kA/SMC-StayService/internal/service/reservations/models"
)

type fakeService struct {
	gotActor models.Actor
	err      error
}

func (f *fakeService) CheckIn(_ context.Context, id int64, actor models.Actor) (*models.ReservationResponse, error) {
	f.gotActor = actor
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationResponse{ID: id, Status: "checked_in"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, target, role string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/reservations/{reservationId}/check-in", h.Handle).Methods(http.MethodPatch)
	req := httptest.NewRequest(http.MethodPatch, target, nil)
	req = req.WithContext(middleware.WithUser(req.Context(), 1, role))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		err      error
		wantCode int
	}{
		{"checked in", "/api/v1/reservations/5/check-in", nil, http.StatusOK},
		{"bad id", "/api/v1/reservations/five/check-in", nil, http.StatusBadRequest},
		{"not found", "/api/v1/reservations/5/check-in", reservations.ErrReservationNotFound, http.StatusNotFound},
		{"not staff", "/api/v1/reservations/5/check-in", reservations.ErrAccessDenied, http.StatusForbidden},
		{"wrong status", "/api/v1/reservations/5/check-in", reservations.ErrCannotCheckIn, http.StatusConflict},
		{"internal", "/api/v1/reservations/5/check-in", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			rec := serve(NewHandler(svc, nopLogger{}), tt.target, middleware.RoleStaff)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandle_PassesStaffFlag(t *testing.T) {
	svc := &fakeService{}
	serve(NewHandler(svc, nopLogger{}), "/api/v1/reservations/5/check-in", middleware.RoleClient)
	assert.Equal(t, models.Actor{UserID: 1, Staff: false}, svc.gotActor)
}
