// Package httperr defines the JSON error envelope returned by every API
// endpoint and the helper handlers use to abort a request with it.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the body written for failed requests. Status is kept out of
// the JSON since it already travels in the HTTP status line.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the error envelope and stops the handler chain.
// The underlying err is attached to the gin context so the logging
// middleware can still see the real cause behind the client-facing msg.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
