package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-CarWashBot/internal/api/handlers"
	"github.com/m04kA/SMC-CarWashBot/internal/domain"
)

const msgUnauthorized = "Unauthorized, access token invalid or expired."

var ErrInvalidToken = errors.New("middleware: invalid token")

// AdminClaims claims токена администратора
type AdminClaims struct {
	Email          string `json:"email"`
	IsAdmin        bool   `json:"is_admin"`
	IsCarwashAdmin bool   `json:"is_carwash_admin"`
	jwt.RegisteredClaims
}

type adminUserKey struct{}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth проверяет HS256 токен из заголовка Authorization и кладёт пользователя в контекст
func AdminAuth(secret []byte, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			user, err := ParseAdminToken(token, secret)
			if err != nil {
				logger.Warn("%s %s - Token verification failed: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), adminUserKey{}, user)))
		})
	}
}

// ParseAdminToken проверяет подпись и срок действия токена
func ParseAdminToken(raw string, secret []byte) (*domain.AdminUser, error) {
	var claims AdminClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return &domain.AdminUser{
		ID:             claims.Subject,
		Email:          claims.Email,
		IsAdmin:        claims.IsAdmin,
		IsCarwashAdmin: claims.IsCarwashAdmin,
	}, nil
}

// GetAdminUser извлекает администратора из контекста
func GetAdminUser(ctx context.Context) (*domain.AdminUser, bool) {
	user, ok := ctx.Value(adminUserKey{}).(*domain.AdminUser)
	return user, ok
}

// WithAdminUser кладёт администратора в контекст
func WithAdminUser(ctx context.Context, user *domain.AdminUser) context.Context {
	return context.WithValue(ctx, adminUserKey{}, user)
}

// BearerToken извлекает токен из заголовка Authorization
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	return token, ok && token != ""
}
