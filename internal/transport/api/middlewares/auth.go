package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-tales/internal/transport/api/tokens"
)

var ErrTokenNotExist = errors.New("token not exist")

const (
	CurrentUserIDKey   = "currentUserID"
	CurrentOperatorKey = "currentOperator"
)

// extractIdentity достает утверждение личности из заголовка Authorization.
// Если токен не передан, вернется ошибка ErrTokenNotExist.
func extractIdentity(c *gin.Context, tokenSecret []byte) (*tokens.IdentityClaims, error) {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if len(tokenHeader) < len(bearer) || tokenHeader[:len(bearer)] != bearer {
		return nil, ErrTokenNotExist
	}

	return tokens.ValidateIdentityJWT(tokenHeader[len(bearer):], tokenSecret)
}

// AuthRequired пропускает только запросы с валидным утверждением личности и кладет
// в контекст gin id юзера (CurrentUserIDKey) и флаг оператора (CurrentOperatorKey).
func AuthRequired(tokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := extractIdentity(c, tokenSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			if !errors.Is(err, ErrTokenNotExist) {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			return
		}
		c.Set(CurrentUserIDKey, claims.UserID)
		c.Set(CurrentOperatorKey, claims.Operator)
		c.Next()
	}
}

// AuthOptional анонимные запросы пропускает как есть; валидный токен кладет в контекст.
// Невалидный (но присутствующий) токен отклоняется: молча низводить юзера до анонима
// нельзя, иначе он не узнает об истекшей сессии.
func AuthOptional(tokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := extractIdentity(c, tokenSecret)
		if err != nil {
			if errors.Is(err, ErrTokenNotExist) {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(CurrentUserIDKey, claims.UserID)
		c.Set(CurrentOperatorKey, claims.Operator)
		c.Next()
	}
}

// OperatorRequired пропускает только операторов. Вешается после AuthRequired.
func OperatorRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		operator, ok := c.Get(CurrentOperatorKey)
		if !ok || operator != true {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "operator access required"})
			return
		}
		c.Next()
	}
}
