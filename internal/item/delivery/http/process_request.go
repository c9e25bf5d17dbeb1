package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"catalog/internal/item"
)

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, fmt.Errorf("%w: %v", item.ErrInvalidPayload, err)
	}
	return req, req.validate()
}

// processIDParam validates the :id URI param and returns it in canonical form.
func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", item.ErrInvalidID
	}
	return id.String(), nil
}

// processCreateReq binds and validates the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", item.ErrInvalidPayload, err)
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update item request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", item.ErrInvalidPayload, err)
	}
	req.ID = id
	return req, req.validate()
}
