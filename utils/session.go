package utils

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is what a storefront session carries: who is shopping and,
// once something has been added to a cart, which cart is bound to the
// session. CartID is empty until the first add-to-cart and cleared again
// when the cart reaches a terminal status.
type SessionClaims struct {
	UserID string
	CartID string
}

const sessionTokenTTL = 24 * time.Hour

// SignSessionToken issues a signed session token. The cart binding lives in
// the token itself, so rebinding means reissuing.
func SignSessionToken(claims SessionClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": claims.UserID,
		"cart_id": claims.CartID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(sessionTokenTTL).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("SESSION_SECRET")))
}

// ParseSessionToken verifies the signature and extracts the session claims.
func ParseSessionToken(tokenString string) (SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(os.Getenv("SESSION_SECRET")), nil
	})
	if err != nil {
		return SessionClaims{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return SessionClaims{}, errors.New("invalid session token")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return SessionClaims{}, errors.New("session token has no user")
	}
	cartID, _ := claims["cart_id"].(string)

	return SessionClaims{UserID: userID, CartID: cartID}, nil
}
