package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/lajubus/lajubus/internal/pkg/models"
)

// GenerateToken signs a session token for the given identity. Validity is
// driven by config (24 hours by default); there is no refresh mechanism.
func GenerateToken(user models.AuthUser, cfg *models.Config) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"id":       user.ID,
		"role":     user.Role,
		"username": user.Username,
		"name":     user.Name,
		"exp":      expiresAt,
		"iss":      cfg.JWT.Issuer,
	}
	if user.AgencyID != "" {
		claims["agency_id"] = user.AgencyID
	}
	if user.AgencyCode != "" {
		claims["agency_code"] = user.AgencyCode
	}
	if user.Email != "" {
		claims["email"] = user.Email
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a token and returns the raw claims.
func ValidateToken(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token claims")
}

// UserFromClaims rebuilds the session identity from validated claims.
func UserFromClaims(claims jwt.MapClaims) models.AuthUser {
	str := func(key string) string {
		if v, ok := claims[key]; ok {
			return fmt.Sprintf("%v", v)
		}
		return ""
	}
	return models.AuthUser{
		ID:         str("id"),
		Role:       str("role"),
		AgencyID:   str("agency_id"),
		AgencyCode: str("agency_code"),
		Username:   str("username"),
		Name:       str("name"),
		Email:      str("email"),
	}
}
