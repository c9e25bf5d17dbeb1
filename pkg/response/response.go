package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "catalog/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// OKWrapped sends 200 JSON with data wrapped in the Resp envelope.
func OKWrapped(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data and a Location header.
func Created(c *gin.Context, location string, data any) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, data)
}

// NoContent sends an empty 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response. HTTPErrors keep their status and an empty
// message yields a bodyless response; any other error is a 400.
func Error(c *gin.Context, err error) {
	if he, ok := pkgErrors.AsHTTPError(err); ok {
		if he.Message == "" {
			c.Status(he.Code)
			return
		}
		c.JSON(he.Code, Resp{
			ErrorCode: he.Code,
			Message:   he.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: BadRequestErrorCode,
		Message:   err.Error(),
	})
}

// InternalError aborts the chain with a generic 500.
func InternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests aborts the chain with 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   pkgErrors.ErrTooManyRequests.Message,
	})
}

// ServiceUnavailable sends 503 with data.
func ServiceUnavailable(c *gin.Context, data any) {
	c.JSON(http.StatusServiceUnavailable, Resp{
		ErrorCode: http.StatusServiceUnavailable,
		Message:   pkgErrors.ErrServiceUnavailable.Message,
		Data:      data,
	})
}
