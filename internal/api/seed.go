package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog/internal/seed"
)

// SeedHandler — GET /api/seed
type SeedHandler struct {
	seeder *seed.Service
}

func NewSeedHandler(seeder *seed.Service) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

func (h *SeedHandler) Run(c *gin.Context) {
	if err := h.seeder.Run(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.String(http.StatusOK, "SEED EXECUTED")
}
