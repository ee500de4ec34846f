package error

import (
	"github.com/gin-gonic/gin"
)

// Response envelope helpers. Every endpoint answers with
// {success, data?, message, errors?} so the front end can branch on a
// single shape.

func ReturnJSONError(ctx *gin.Context, statusCode int, message string) {
	ctx.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

func ReturnValidationErrors(ctx *gin.Context, statusCode int, fieldErrors interface{}) {
	ctx.JSON(statusCode, gin.H{
		"success": false,
		"message": "Validation failed",
		"errors":  fieldErrors,
	})
}

func ReturnJSONSuccess(ctx *gin.Context, statusCode int, data interface{}, message string) {
	ctx.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
		"message": message,
	})
}
