// Package tokens проверка идентификационных утверждений. Аутентификацией занимается
// внешний сервис: он выдает юзеру подписанный HS256 токен с непрозрачным id и флагом
// оператора, а мы лишь проверяем подпись и срок действия.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenExpired = errors.New("token expired")

// IdentityClaims утверждение личности вызывающего. UserID непрозрачен для системы,
// Operator дает доступ к админским операциям (подтверждение пополнений, модерация).
type IdentityClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"uid"`
	Operator bool   `json:"op,omitempty"`
}

// GenerateIdentityJWT выпускает утверждение личности. В проде этим занимается внешний
// сервис аутентификации; функция нужна тестам и локальной разработке.
func GenerateIdentityJWT(userID string, operator bool, expire time.Duration, key []byte) (string, error) {
	claims := IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		UserID:   userID,
		Operator: operator,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating identity jwt token: %s", err.Error())
	}
	return tokenString, nil
}

// ValidateIdentityJWT проверяет подпись и срок действия утверждения и возвращает claims.
func ValidateIdentityJWT(tokenString string, key []byte) (*IdentityClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, new(IdentityClaims), func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing identity jwt token: %w", err)
	}

	claims, ok := token.Claims.(*IdentityClaims)
	if !ok || claims.UserID == "" {
		return nil, errors.New("invalid identity claims")
	}
	return claims, nil
}
