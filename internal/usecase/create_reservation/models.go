package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-StayService/internal/domain"
)

// Request модель запроса на бронирование номера
type Request struct {
	ClientID   int64     // ID клиента из токена
	RoomID     int64     // ID номера
	CheckIn    time.Time // Дата заезда
	CheckOut   time.Time // Дата выезда
	GuestCount int       // 0 - domain.DefaultGuestCount
	Notes      *string   // Пожелания гостя (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation *domain.Reservation
	Nights      int
}
