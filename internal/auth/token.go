package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"worklink_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("authorization header missing or invalid")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims is the JWT payload carried in bearer tokens.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenAuthenticator verifies HS256 bearer tokens.
type TokenAuthenticator struct {
	Secret string
}

func (a *TokenAuthenticator) Authenticate(r *http.Request) (*Principal, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, ErrMissingToken
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(a.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &Principal{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   models.UserRole(claims.Role),
	}, nil
}

// GenerateToken issues a signed token for the given identity. Used by the
// seed command to print a usable dev token.
func GenerateToken(secret string, ttl time.Duration, p Principal) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: p.UserID,
		Email:  p.Email,
		Role:   string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
