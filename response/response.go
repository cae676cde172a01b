package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the envelope every endpoint answers with. Successful responses
// carry payload+message, failures carry message plus the raw diagnostic in
// serverMessage.
type Body struct {
	Payload       any    `json:"payload,omitempty"`
	Message       string `json:"message"`
	ServerMessage string `json:"serverMessage,omitempty"`
}

// OK writes a 200 success envelope.
func OK(c *gin.Context, payload any, message string) {
	c.JSON(http.StatusOK, Body{Payload: payload, Message: message})
}

// Fail writes a failure envelope with the given status. A nil err omits
// serverMessage.
func Fail(c *gin.Context, status int, message string, err error) {
	body := Body{Message: message}
	if err != nil {
		body.ServerMessage = err.Error()
	}
	c.JSON(status, body)
}

// NotFound writes a 404 with just a message, matching the not-found shape of
// update/delete misses.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Body{Message: message})
}

// BadRequest writes a 400 for malformed or incomplete requests.
func BadRequest(c *gin.Context, message string, err error) {
	Fail(c, http.StatusBadRequest, message, err)
}

// Internal writes a 500 for store or filesystem failures.
func Internal(c *gin.Context, err error) {
	Fail(c, http.StatusInternalServerError, "Internal Server Error", err)
}
