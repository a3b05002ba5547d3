package create_room

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	"github.com/m04kA/SMC-StayService/internal/service/rooms"
	"github.com/m04kA/SMC-StayService/internal/service/rooms/models"
	"github.com/m04kA/SMC-StayService/pkg/validation"
)

type fakeService struct {
	got      *models.CreateRoomRequest
	gotActor models.Actor
	err      error
}

func (f *fakeService) Create(_ context.Context, req *models.CreateRoomRequest, actor models.Actor) (*models.RoomResponse, error) {
	f.got = req
	f.gotActor = actor
	if f.err != nil {
		return nil, f.err
	}
	return &models.RoomResponse{ID: 200, Number: req.Number, NightlyRate: req.NightlyRate, Capacity: req.Capacity, IsActive: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, body, role string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/rooms", h.Handle).Methods(http.MethodPost)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms", strings.NewReader(body))
	req = req.WithContext(middleware.WithUser(req.Context(), 1, role))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}), `{"number":"R202","nightlyRate":80,"capacity":3}`, middleware.RoleStaff)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, "R202", svc.got.Number)
	assert.Equal(t, 80.0, svc.got.NightlyRate)
	assert.Nil(t, svc.got.IsActive)
	assert.Equal(t, models.Actor{UserID: 1, Staff: true}, svc.gotActor)
	assert.Contains(t, rec.Body.String(), `"id":200`)
}

func TestHandle_Errors(t *testing.T) {
	valid := `{"number":"R202","nightlyRate":80,"capacity":3}`
	invalid := fmt.Errorf("%w: %w", rooms.ErrInvalidInput, validation.Violations{{Field: "nightlyRate", Message: "must be a non-negative amount"}})

	tests := []struct {
		name     string
		body     string
		role     string
		err      error
		wantCode int
	}{
		{"client", valid, middleware.RoleClient, nil, http.StatusForbidden},
		{"missing number", `{"nightlyRate":80,"capacity":3}`, middleware.RoleStaff, nil, http.StatusBadRequest},
		{"zero capacity", `{"number":"R202","nightlyRate":80,"capacity":0}`, middleware.RoleStaff, nil, http.StatusBadRequest},
		{"negative rate", `{"number":"R202","nightlyRate":-1,"capacity":2}`, middleware.RoleStaff, nil, http.StatusBadRequest},
		{"unknown field", `{"number":"R202","nightlyRate":80,"capacity":3,"floor":2}`, middleware.RoleStaff, nil, http.StatusBadRequest},
		{"domain validation", valid, middleware.RoleStaff, invalid, http.StatusBadRequest},
		{"number taken", valid, middleware.RoleStaff, rooms.ErrRoomNumberTaken, http.StatusConflict},
		{"internal", valid, middleware.RoleStaff, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeService{err: tt.err}, nopLogger{}), tt.body, tt.role)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandle_ClientDoesNotReachService(t *testing.T) {
	svc := &fakeService{}
	rec := serve(NewHandler(svc, nopLogger{}), `{"number":"R202","nightlyRate":80,"capacity":3}`, middleware.RoleClient)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, svc.got)
}
