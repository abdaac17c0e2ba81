package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog/internal/products"
)

func abortWithStatus(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"statusCode": status,
		"message":    message,
		"error":      http.StatusText(status),
	})
}

// respondError переводит ошибку сервиса в HTTP-ответ
func respondError(c *gin.Context, err error) {
	var perr *products.Error
	if !errors.As(err, &perr) {
		abortWithStatus(c, http.StatusInternalServerError, "Unexpected error, check server logs")
		return
	}
	switch perr.Kind {
	case products.KindNotFound:
		abortWithStatus(c, http.StatusNotFound, perr.Message)
	case products.KindBadRequest:
		abortWithStatus(c, http.StatusBadRequest, perr.Message)
	default:
		abortWithStatus(c, http.StatusInternalServerError, perr.Message)
	}
}
