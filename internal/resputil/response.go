package resputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response documents the error envelope for swagger.
type Response struct {
	Code ErrorCode `json:"code"`
	Msg  string    `json:"msg"`
}

func httpStatus(code ErrorCode) int {
	switch code {
	case OK:
		return http.StatusOK
	case InvalidRequest:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case StorageError, NotSpecified:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Success writes the entity as a plain JSON body with status 200.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created writes the created entity with status 201.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Error writes the error envelope with the HTTP status derived from the code.
func Error(c *gin.Context, msg string, code ErrorCode) {
	c.JSON(httpStatus(code), Response{Code: code, Msg: msg})
}
