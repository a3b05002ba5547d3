package clientservice

// ClientProfile клиент из ClientService
type ClientProfile struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	IsBlocked bool    `json:"is_blocked"`
}

// FullName имя для карточки бронирования
func (c *ClientProfile) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}

// ErrorResponse модель ошибки от ClientService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
