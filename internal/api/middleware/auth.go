package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-StayService/internal/api/handlers"
)

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "недействительный токен авторизации"
)

// Роли, которые выдаёт провайдер авторизации
const (
	RoleClient = "client"
	RoleStaff  = "staff"
	RoleAdmin  = "admin"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	roleKey
	requestIDKey
)

// Claims токен провайдера: sub - ID пользователя, role - роль
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth проверяет Bearer токен (HS256, общий секрет с провайдером) и кладёт пользователя в контекст.
// Пустой issuer отключает проверку iss
func Auth(secret, issuer string) func(http.Handler) http.Handler {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)

	keyFunc := func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			var claims Claims
			token, err := parser.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), &claims, keyFunc)
			if err != nil || !token.Valid {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), userID, claims.Role)))
		})
	}
}

// UserID разбирает sub как положительное целое
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("subject must be positive")
	}
	return id, nil
}

// WithUser кладёт пользователя в контекст
func WithUser(ctx context.Context, userID int64, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok && id > 0
}

// GetRole возвращает роль пользователя из контекста
func GetRole(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// IsStaff персонал отеля или администратор
func IsStaff(ctx context.Context) bool {
	switch GetRole(ctx) {
	case RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}
