package response

import "github.com/gin-gonic/gin"

// Body is the envelope every endpoint answers with
type Body struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Send writes the response envelope with the given status code.
// It is the only path by which handlers produce output; Data is null
// when there is no payload.
func Send(c *gin.Context, status int, success bool, message string, data any) {
	c.JSON(status, Body{
		Success: success,
		Message: message,
		Data:    data,
	})
}
