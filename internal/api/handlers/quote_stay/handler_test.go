package quote_stay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
	quoteStay "github.com/m04kA/SMC-StayService/internal/usecase/quote_stay"
)

type fakeUseCase struct {
	got  *quoteStay.Request
	resp *quoteStay.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *quoteStay.Request) (*quoteStay.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, target, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/rooms/{roomId}/quote", h.Handle).Methods(http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, strings.NewReader(body)))
	return rec
}

func TestHandle_Success(t *testing.T) {
	checkIn := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &quoteStay.Response{
		RoomID:       101,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		NightlyRate:  100,
		Nights:       4,
		RoomTotal:    400,
		ChargesTotal: 40,
		Total:        440,
	}}

	rec := serve(NewHandler(uc, nopLogger{}), "/api/v1/rooms/101/quote",
		`{"checkIn":"2024-01-05","checkOut":"2024-01-09","charges":[15,25]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(101), uc.got.RoomID)
	assert.Equal(t, checkIn, uc.got.CheckIn)
	assert.Equal(t, []float64{15, 25}, uc.got.Charges)

	var body QuoteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 440.0, body.Total)
	assert.Equal(t, 4, body.Nights)
	assert.Equal(t, "2024-01-09", body.CheckOut)
}

func TestHandle_ValidationDetails(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(NewHandler(uc, nopLogger{}), "/api/v1/rooms/101/quote",
		`{"checkIn":"2024-01-05","checkOut":"09.01.2024","charges":[-5]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)

	var body handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	fields := make([]string, 0, len(body.Details))
	for _, d := range body.Details {
		fields = append(fields, d.Field)
	}
	assert.Contains(t, fields, "checkOut")
	assert.Contains(t, fields, "charges[0]")
}

func TestHandle_Errors(t *testing.T) {
	valid := `{"checkIn":"2024-01-05","checkOut":"2024-01-09"}`

	tests := []struct {
		name     string
		target   string
		body     string
		err      error
		wantCode int
	}{
		{"bad room id", "/api/v1/rooms/0/quote", valid, nil, http.StatusBadRequest},
		{"malformed body", "/api/v1/rooms/1/quote", `{"checkIn":`, nil, http.StatusBadRequest},
		{"unknown field", "/api/v1/rooms/1/quote", `{"checkIn":"2024-01-05","checkOut":"2024-01-09","rate":1}`, nil, http.StatusBadRequest},
		{"room not found", "/api/v1/rooms/1/quote", valid, quoteStay.ErrRoomNotFound, http.StatusNotFound},
		{"room inactive", "/api/v1/rooms/1/quote", valid, quoteStay.ErrRoomInactive, http.StatusConflict},
		{"invalid stay", "/api/v1/rooms/1/quote", valid, fmt.Errorf("%w: checkOut before checkIn", quoteStay.ErrInvalidInput), http.StatusBadRequest},
		{"internal", "/api/v1/rooms/1/quote", valid, fmt.Errorf("%w: db down", quoteStay.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), tt.target, tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
