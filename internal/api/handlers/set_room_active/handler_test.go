package set_room_active

import (
	"context"
	"errors"
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
)

type fakeService struct {
	got *models.SetActiveRequest
	err error
}

func (f *fakeService) SetActive(_ context.Context, id int64, req *models.SetActiveRequest, _ models.Actor) (*models.RoomResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.RoomResponse{ID: id, Number: "R101", NightlyRate: 50, Capacity: 2, IsActive: req.IsActive}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, target, body, role string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/rooms/{roomId}/active", h.Handle).Methods(http.MethodPatch)
	req := httptest.NewRequest(http.MethodPatch, target, strings.NewReader(body))
	req = req.WithContext(middleware.WithUser(req.Context(), 1, role))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Deactivated(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, nopLogger{}), "/api/v1/rooms/101/active", `{"isActive":false}`, middleware.RoleStaff)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.False(t, svc.got.IsActive)
	assert.Contains(t, rec.Body.String(), `"isActive":false`)
}

func TestHandle_Errors(t *testing.T) {
	valid := `{"isActive":true}`

	tests := []struct {
		name     string
		target   string
		body     string
		role     string
		err      error
		wantCode int
	}{
		{"bad id", "/api/v1/rooms/x/active", valid, middleware.RoleStaff, nil, http.StatusBadRequest},
		{"client", "/api/v1/rooms/101/active", valid, middleware.RoleClient, nil, http.StatusForbidden},
		{"missing flag", "/api/v1/rooms/101/active", `{}`, middleware.RoleStaff, nil, http.StatusBadRequest},
		{"not found", "/api/v1/rooms/101/active", valid, middleware.RoleStaff, rooms.ErrRoomNotFound, http.StatusNotFound},
		{"internal", "/api/v1/rooms/101/active", valid, middleware.RoleStaff, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeService{err: tt.err}, nopLogger{}), tt.target, tt.body, tt.role)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
