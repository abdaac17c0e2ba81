package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog/internal/products"
)

// ProductHandler — HTTP-обёртка над products.Service
type ProductHandler struct {
	svc *products.Service
}

func NewProductHandler(svc *products.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// uuidParam — аналог ParseUUIDPipe: для PATCH/DELETE нужен именно UUID
func uuidParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if !products.IsUUID(id) {
		abortWithStatus(c, http.StatusBadRequest, "Validation failed (uuid is expected)")
		return "", false
	}
	return id, true
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req products.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}
	view, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *ProductHandler) FindAll(c *gin.Context) {
	var page products.Pagination
	if err := c.ShouldBindQuery(&page); err != nil {
		abortWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}
	items, err := h.svc.FindAll(c.Request.Context(), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) FindOne(c *gin.Context) {
	view, err := h.svc.FindOnePlain(c.Request.Context(), c.Param("term"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req products.UpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}
	view, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ProductHandler) Remove(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
