package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/souhail4real/freelanci-catalog/internal/catalog"
	"github.com/souhail4real/freelanci-catalog/internal/logger"
	"github.com/souhail4real/freelanci-catalog/internal/team"
)

// ErrorHandler обрабатывает ошибки централизованно.
// Маскирует внутренние ошибки и возвращает понятные сообщения клиенту.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Проверяем, не был ли уже отправлен ответ
		if c.Writer.Written() {
			return
		}

		if len(c.Errors) > 0 {
			err := c.Errors.Last()

			statusCode := http.StatusInternalServerError
			message := "внутренняя ошибка сервера"

			logger.Log.WithFields(logrus.Fields{
				"error":  err.Error(),
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			}).Error("Request error")

			var reqErr *team.RequestError
			switch {
			case errors.Is(err.Err, catalog.ErrUnknownCategory):
				statusCode = http.StatusBadRequest
				message = "неизвестная категория"
			case errors.As(err.Err, &reqErr):
				statusCode = reqErr.StatusCode
				message = reqErr.Message
			}

			c.JSON(statusCode, gin.H{"error": message})
		}
	}
}
