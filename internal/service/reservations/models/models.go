package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidChargeKind возвращается при некорректном типе начисления
	ErrInvalidChargeKind = errors.New("invalid charge kind")
)

// Actor кто выполняет действие: клиент видит только свои бронирования, персонал - все
type Actor struct {
	UserID int64
	Staff  bool
}

// CanAccess клиент-владелец или персонал
func (a Actor) CanAccess(clientID int64) bool {
	return a.Staff || a.UserID == clientID
}

// Request модели

// GetClientReservationsRequest запрос на получение бронирований клиента
type GetClientReservationsRequest struct {
	ClientID int64   `json:"clientId"`
	Status   *string `json:"status,omitempty"`
}

// AddChargeRequest запрос на добавление начисления
type AddChargeRequest struct {
	Kind        string  `json:"kind"`
	Amount      float64 `json:"amount"`
	Description *string `json:"description,omitempty"`
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID          int64   `json:"id"`
	RoomID      int64   `json:"roomId"`
	ClientID    int64   `json:"clientId"`
	CheckIn     string  `json:"checkIn"`  // "2024-01-05"
	CheckOut    string  `json:"checkOut"` // "2024-01-09"
	Nights      int     `json:"nights"`
	Status      string  `json:"status"`
	GuestCount  int     `json:"guestCount"`
	NightlyRate float64 `json:"nightlyRate"`
	TotalAmount float64 `json:"totalAmount"`

	GuestName *string `json:"guestName,omitempty"`
	Notes     *string `json:"notes,omitempty"`

	CheckedInAt  *string `json:"checkedInAt,omitempty"` // ISO 8601
	CheckedOutAt *string `json:"checkedOutAt,omitempty"`
	CancelledAt  *string `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// ChargeResponse начисление
type ChargeResponse struct {
	ID            int64     `json:"id"`
	ReservationID int64     `json:"reservationId"`
	Kind          string    `json:"kind"`
	Amount        float64   `json:"amount"`
	Description   *string   `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:           r.ID,
		RoomID:       r.RoomID,
		ClientID:     r.ClientID,
		CheckIn:      r.Stay.Start.Format(domain.DateFormat),
		CheckOut:     r.Stay.End.Format(domain.DateFormat),
		Nights:       r.Stay.Days(),
		Status:       string(r.Status),
		GuestCount:   r.GuestCount,
		NightlyRate:  r.NightlyRate,
		TotalAmount:  r.TotalAmount,
		GuestName:    r.GuestName,
		Notes:        r.Notes,
		CheckedInAt:  formatTime(r.CheckedInAt),
		CheckedOutAt: formatTime(r.CheckedOutAt),
		CancelledAt:  formatTime(r.CancelledAt),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if item := FromDomainReservation(r); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}

	return resp
}

// FromDomainCharge конвертирует начисление в DTO
func FromDomainCharge(c *domain.Charge) *ChargeResponse {
	if c == nil {
		return nil
	}
	return &ChargeResponse{
		ID:            c.ID,
		ReservationID: c.ReservationID,
		Kind:          string(c.Kind),
		Amount:        c.Amount,
		Description:   c.Description,
		CreatedAt:     c.CreatedAt,
	}
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s, err := domain.ParseReservationStatus(status)
	if err != nil {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ToDomainChargeKind конвертирует строку в domain.ChargeKind с валидацией
func ToDomainChargeKind(kind string) (domain.ChargeKind, error) {
	k, ok := domain.ParseChargeKind(kind)
	if !ok {
		return "", ErrInvalidChargeKind
	}
	return k, nil
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
