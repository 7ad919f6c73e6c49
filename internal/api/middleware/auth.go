package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomAvailabilityService/internal/api/handlers"
)

const (
	headerAuthorization = "Authorization"
	headerAccessToken   = "x-access-token"
	bearerPrefix        = "Bearer "

	msgMissingToken = "missing_token"
	msgInvalidToken = "invalid_token"
)

var (
	// ErrMissingToken возвращается, когда токен не передан
	ErrMissingToken = errors.New("auth: missing token")

	// ErrInvalidToken возвращается при неверной подписи, алгоритме или сроке токена
	ErrInvalidToken = errors.New("auth: invalid token")
)

type ctxKey struct{}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// GetSubject возвращает subject токена из контекста запроса
func GetSubject(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(ctxKey{}).(string)
	return sub, ok
}

// JWTAuth проверяет HS256 токен служебных маршрутов.
// Токен берется из Authorization: Bearer или из x-access-token
func JWTAuth(secret string, log Logger) mux.MiddlewareFunc {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractToken(r)
			if raw == "" {
				log.Warn("%s %s - Missing token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			sub, err := validateToken(raw, key)
			if err != nil {
				log.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, sub)))
		})
	}
}

func extractToken(r *http.Request) string {
	if header := r.Header.Get(headerAuthorization); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}
	return strings.TrimSpace(r.Header.Get(headerAccessToken))
}

func validateToken(raw string, key []byte) (string, error) {
	if len(key) == 0 {
		return "", fmt.Errorf("%w: secret is not configured", ErrInvalidToken)
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	return sub, nil
}
