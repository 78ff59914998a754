package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireAuth закрывает мутирующие маршруты bearer-токеном.
//
// Проверяется только наличие заголовка, не подлинность токена: пароль
// хэшируется и сверяется на клиенте, сервер выдачей токенов не занимается
// и проверить их не может. Это осознанно слабая граница доступа,
// унаследованная от схемы со статическим деплоем, а не полноценная
// аутентификация. Усиливать её молча нельзя — клиент перестанет работать.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "требуется авторизация"})
			return
		}
		c.Next()
	}
}
