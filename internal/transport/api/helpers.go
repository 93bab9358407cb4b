package api

import (
	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-tales/internal/transport/api/middlewares"
)

// getUserIDFromContext берет из контекста gin id текущего юзера. ID устанавливается в
// middlewares.AuthRequired / AuthOptional. Для анонимного вызова вернется пустая строка.
func getUserIDFromContext(c *gin.Context) string {
	userIDVal, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return ""
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return ""
	}
	return userID
}

// isOperatorFromContext сообщает, оператор ли текущий юзер.
func isOperatorFromContext(c *gin.Context) bool {
	operatorVal, exist := c.Get(middlewares.CurrentOperatorKey)
	if !exist {
		return false
	}
	operator, ok := operatorVal.(bool)
	return ok && operator
}
