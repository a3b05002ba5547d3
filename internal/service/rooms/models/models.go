package models

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// Actor кто выполняет действие. Номерным фондом управляет только персонал
type Actor struct {
	UserID int64
	Staff  bool
}

// Request модели

// CreateRoomRequest запрос на заведение номера. IsActive не указан - номер сразу в продаже
type CreateRoomRequest struct {
	Number      string  `json:"number"`
	NightlyRate float64 `json:"nightlyRate"`
	Capacity    int     `json:"capacity"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// UpdateRateRequest новая цена за ночь. Действующие бронирования сохраняют свою цену
type UpdateRateRequest struct {
	NightlyRate float64 `json:"nightlyRate"`
}

// SetActiveRequest вывод номера из продажи или возврат
type SetActiveRequest struct {
	IsActive bool `json:"isActive"`
}

// Response модели

// RoomResponse данные номера
type RoomResponse struct {
	ID          int64     `json:"id"`
	Number      string    `json:"number"`
	NightlyRate float64   `json:"nightlyRate"`
	Capacity    int       `json:"capacity"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Конвертеры

// ToDomainRoom собирает доменный номер из запроса
func (r *CreateRoomRequest) ToDomainRoom() *domain.Room {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &domain.Room{
		Number:      r.Number,
		NightlyRate: r.NightlyRate,
		Capacity:    r.Capacity,
		IsActive:    active,
	}
}

func FromDomainRoom(room *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:          room.ID,
		Number:      room.Number,
		NightlyRate: room.NightlyRate,
		Capacity:    room.Capacity,
		IsActive:    room.IsActive,
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}
}
