package http

import (
	"github.com/gin-gonic/gin"

	"catalog/pkg/response"
)

// List godoc
// @Summary     List items
// @Description Returns every item. With keyword, only items whose name contains it (case-sensitive).
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       keyword query string false "Name substring filter"
// @Success     200 {array}  itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by its ID.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID (UUID)"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Create godoc
// @Summary     Create a new item
// @Description Creates an item. ID and created_date are assigned by the server.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     201 {object} itemResp
// @Header      201 {string} Location "Path of the created item"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.location(c.Request.URL.Path, output.Item.ID), h.newCreateResp(output))
}

// Update godoc
// @Summary     Update an item
// @Description Overwrites name and price of an existing item. Description and created_date are kept.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Item ID (UUID)"
// @Param       body body updateReq true "New name and price"
// @Success     204 "No Content"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.Update(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}

// Delete godoc
// @Summary     Delete an item
// @Description Permanently removes an item by ID.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id path string true "Item ID (UUID)"
// @Success     204 "No Content"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}
