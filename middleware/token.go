package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Dosada05/floppoker-console/models"
)

// Имена JWT claims
const (
	jwtClaimSessionID = "sid"
	jwtClaimUserID    = "user_id"
	jwtClaimRole      = "role"
)

// SessionCookie - имя cookie с токеном сессии.
const SessionCookie = "session"

// SessionClaims - содержимое проверенного токена.
type SessionClaims struct {
	SessionID string
	UserID    int
	Role      models.UserRole
}

// IssueToken подписывает токен сессии HS256.
func IssueToken(secret []byte, c SessionClaims, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		jwtClaimSessionID: c.SessionID,
		jwtClaimUserID:    c.UserID,
		jwtClaimRole:      string(c.Role),
		"exp":             now.Add(ttl).Unix(),
		"iat":             now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken проверяет подпись и срок действия токена.
func ParseToken(secret []byte, raw string) (SessionClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return SessionClaims{}, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return SessionClaims{}, errors.New("invalid token claims")
	}

	sid, ok := claims[jwtClaimSessionID].(string)
	if !ok || sid == "" {
		return SessionClaims{}, fmt.Errorf("missing '%s' claim in token", jwtClaimSessionID)
	}
	userIDFloat, ok := claims[jwtClaimUserID].(float64)
	if !ok {
		return SessionClaims{}, fmt.Errorf("invalid type for '%s' claim: expected number, got %T", jwtClaimUserID, claims[jwtClaimUserID])
	}
	if userIDFloat != float64(int(userIDFloat)) || userIDFloat <= 0 {
		return SessionClaims{}, fmt.Errorf("invalid user ID value in '%s' claim: %v", jwtClaimUserID, userIDFloat)
	}
	roleStr, ok := claims[jwtClaimRole].(string)
	if !ok {
		return SessionClaims{}, fmt.Errorf("invalid type for '%s' claim: expected string, got %T", jwtClaimRole, claims[jwtClaimRole])
	}
	role := models.UserRole(roleStr)
	switch role {
	case models.RoleDirector, models.RolePlayer:
	default:
		return SessionClaims{}, fmt.Errorf("invalid role value in claim: %q", roleStr)
	}

	return SessionClaims{SessionID: sid, UserID: int(userIDFloat), Role: role}, nil
}
