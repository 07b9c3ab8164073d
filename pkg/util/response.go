package util

import (
	"log"

	"github.com/gin-gonic/gin"

	"okaziyo-api-io/api/pkg/apperr"
)

type SuccessResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

func HandleSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, SuccessResponse{
		Status:  statusCode,
		Message: message,
		Data:    data,
		Meta:    nil,
	})
}

func HandleSuccessMeta(c *gin.Context, statusCode int, message string, data, meta interface{}) {
	c.JSON(statusCode, SuccessResponse{
		Status:  statusCode,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

type ErrorResponse struct {
	Error string `json:"error,omitempty"`
}

func HandleError(c *gin.Context, statusCode int, err error, message string) {
	log.Println(err)
	c.JSON(statusCode, ErrorResponse{
		Error: message,
	})
}

// HandleFailure resolves the status code from the error taxonomy so
// handlers don't pick codes by hand.
func HandleFailure(c *gin.Context, err error, message string) {
	HandleError(c, apperr.StatusCode(err), err, message)
}
