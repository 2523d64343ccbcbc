package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

type Err struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	StatusText string            `json:"status"`
	Message    string            `json:"message"`
	Errors     validation.Errors `json:"errors,omitempty" swaggertype:"object"`
}

func (e *Err) Error() string {
	if e.Err == nil {
		return e.Message
	}

	return e.Err.Error()
}

// RenderErr writes err as the JSON body and aborts the chain. Server errors are
// logged with their wrapped cause, which is never sent to the client.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(err.Err),
		)
	}

	ctx.AbortWithStatusJSON(err.HTTPStatusCode, err)
}

func newErr(status int, err error, message string) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: status,
		StatusText:     http.StatusText(status),
		Message:        message,
	}
}

// ErrBadRequest reports invalid input. Per-field validation failures are
// rendered under "errors".
func ErrBadRequest(err error) *Err {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		e := newErr(http.StatusBadRequest, err, "invalid input")
		e.Errors = vErrs

		return e
	}

	return newErr(http.StatusBadRequest, err, err.Error())
}

func ErrNotFound(resource, field string, value any) *Err {
	err := fmt.Errorf("%s with %s %v not found", resource, field, value)

	return newErr(http.StatusNotFound, err, err.Error())
}

func ErrConflict(err error) *Err {
	return newErr(http.StatusConflict, err, err.Error())
}

func ErrUnauthorized(err error) *Err {
	return newErr(http.StatusUnauthorized, err, "authentication credentials were not provided or are invalid")
}

func ErrWrongCredentials(err error) *Err {
	return newErr(http.StatusUnauthorized, err, "wrong email or password")
}

func ErrPermissionDenied(err error) *Err {
	return newErr(http.StatusForbidden, err, err.Error())
}

func ErrTooManyRequests() *Err {
	return newErr(http.StatusTooManyRequests, nil, "too many requests, try again later")
}

func ErrInternalServerError(err error) *Err {
	return newErr(http.StatusInternalServerError, err, "internal server error")
}
