package create_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/api/middleware"
	"github.com/m04kA/SMC-StayService/internal/domain"
	"github.com/m04kA/SMC-StayService/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-StayService/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	got *createReservation.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	stay, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	return &createReservation.Response{
		Reservation: &domain.Reservation{
			ID:          55,
			RoomID:      req.RoomID,
			ClientID:    req.ClientID,
			Stay:        stay,
			Status:      domain.StatusConfirmed,
			GuestCount:  2,
			NightlyRate: 100,
			TotalAmount: 400,
		},
		Nights: stay.Days(),
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{"roomId":101,"checkIn":"2024-01-05","checkOut":"2024-01-09","guestCount":2}`

func do(h *Handler, userID int64, role, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	if userID > 0 {
		req = req.WithContext(middleware.WithUser(req.Context(), userID, role))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}

	rec := do(NewHandler(uc, nopLogger{}), 7, middleware.RoleClient, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(7), uc.got.ClientID)
	assert.Equal(t, int64(101), uc.got.RoomID)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), uc.got.CheckIn)

	var body models.ReservationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, int64(55), body.ID)
	assert.Equal(t, "confirmed", body.Status)
	assert.Equal(t, 4, body.Nights)
	assert.Equal(t, 400.0, body.TotalAmount)
}

func TestHandle_ClientIDOverride(t *testing.T) {
	body := `{"clientId":9,"roomId":101,"checkIn":"2024-01-05","checkOut":"2024-01-09"}`

	t.Run("staff books for client", func(t *testing.T) {
		uc := &fakeUseCase{}
		rec := do(NewHandler(uc, nopLogger{}), 1, middleware.RoleStaff, body)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, int64(9), uc.got.ClientID)
	})

	t.Run("client cannot book for another client", func(t *testing.T) {
		uc := &fakeUseCase{}
		rec := do(NewHandler(uc, nopLogger{}), 7, middleware.RoleClient, body)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Nil(t, uc.got)
	})
}

func TestHandle_RequestErrors(t *testing.T) {
	tests := []struct {
		name     string
		userID   int64
		body     string
		wantCode int
	}{
		{"no user", 0, validBody, http.StatusUnauthorized},
		{"malformed json", 7, `{"roomId":`, http.StatusBadRequest},
		{"missing room", 7, `{"checkIn":"2024-01-05","checkOut":"2024-01-09"}`, http.StatusBadRequest},
		{"bad date", 7, `{"roomId":1,"checkIn":"5 Jan","checkOut":"2024-01-09"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := do(NewHandler(uc, nopLogger{}), tt.userID, middleware.RoleClient, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
	}{
		{createReservation.ErrRoomNotAvailable, http.StatusConflict},
		{createReservation.ErrRoomNotFound, http.StatusNotFound},
		{createReservation.ErrClientNotFound, http.StatusNotFound},
		{createReservation.ErrClientBlocked, http.StatusForbidden},
		{createReservation.ErrCheckInInPast, http.StatusBadRequest},
		{fmt.Errorf("%w: guestCount exceeds capacity", createReservation.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("%w: tx failed", createReservation.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := do(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), 7, middleware.RoleClient, validBody)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
