package auth

import (
	"time"

	"daycare-api/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
)

const TokenTTL = 24 * time.Hour

type Claims struct {
	UserID int
	Role   string
}

func IssueToken(secret string, user *User, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     now.Add(TokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", apperr.Storef("failed to sign session token")
	}
	return signed, nil
}

// VerifyToken checks signature and expiry and extracts the session claims.
func VerifyToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Authf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperr.Authf("invalid or expired token")
	}

	idVal, ok := claims["user_id"].(float64)
	if !ok {
		return nil, apperr.Authf("invalid or expired token")
	}

	role, _ := claims["role"].(string)

	return &Claims{UserID: int(idVal), Role: role}, nil
}
