package apperrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError - обработка ошибок для Gin контекста.
// Неизвестные ошибки оборачиваются в InternalError, чтобы наружу
// никогда не уходило сырое сообщение хранилища.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		log.Printf("Server error: %v", err)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}
