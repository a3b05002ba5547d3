package quote_stay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
	roomRepo "github.com/m04kA/SMC-StayService/internal/infra/storage/room"
	"github.com/m04kA/SMC-StayService/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRooms map[int64]*domain.Room

func (f fakeRooms) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if id == 500 {
		return nil, errors.New("db down")
	}
	room, ok := f[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestUseCase() *UseCase {
	return NewUseCase(fakeRooms{
		101: {ID: 101, Number: "R101", NightlyRate: 50, Capacity: 2, IsActive: true},
		102: {ID: 102, Number: "R102", NightlyRate: 80, Capacity: 2, IsActive: false},
	}, nopLogger{})
}

func TestExecute(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:   101,
		CheckIn:  day("2024-01-01"),
		CheckOut: day("2024-01-10"),
	})
	require.NoError(t, err)
	assert.Equal(t, 9, resp.Nights)
	assert.Equal(t, 450.0, resp.Total)
	assert.Zero(t, resp.ChargesTotal)

	resp, err = uc.Execute(context.Background(), &Request{
		RoomID:   101,
		CheckIn:  day("2024-01-05"),
		CheckOut: day("2024-01-09"),
		Charges:  []float64{15.5, 24.5},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Nights)
	assert.Equal(t, 200.0, resp.RoomTotal)
	assert.Equal(t, 40.0, resp.ChargesTotal)
	assert.Equal(t, 240.0, resp.Total)
}

func TestExecute_TimeOfDayIgnored(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:   101,
		CheckIn:  time.Date(2024, 1, 5, 14, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 1, 6, 11, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Nights)
	assert.Equal(t, 50.0, resp.Total)
}

func TestExecute_Errors(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{RoomID: 999, CheckIn: day("2024-01-01"), CheckOut: day("2024-01-02")})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = uc.Execute(ctx, &Request{RoomID: 102, CheckIn: day("2024-01-01"), CheckOut: day("2024-01-02")})
	assert.ErrorIs(t, err, ErrRoomInactive)

	_, err = uc.Execute(ctx, &Request{RoomID: 500, CheckIn: day("2024-01-01"), CheckOut: day("2024-01-02")})
	assert.ErrorIs(t, err, ErrInternal)

	_, err = uc.Execute(ctx, &Request{
		RoomID:   101,
		CheckIn:  day("2024-01-02"),
		CheckOut: day("2024-01-01"),
		Charges:  []float64{10, -5},
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	var violations validation.Violations
	require.True(t, errors.As(err, &violations))
	require.Len(t, violations, 2)
	assert.Equal(t, "checkOut", violations[0].Field)
	assert.Equal(t, "charges[1]", violations[1].Field)
}
