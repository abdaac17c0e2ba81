// Package api — HTTP-слой каталога на gin.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"catalog/internal/products"
	"catalog/internal/seed"
)

// Deps — всё, что нужно роутеру
type Deps struct {
	DB            *gorm.DB
	Products      *products.Service
	Seeder        *seed.Service
	Logger        *zap.Logger
	SeedTokenHash string
}

// NewRouter собирает gin: логгер, recovery, CORS, /health и /api
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(d.Logger), gin.Recovery(), CORSMiddleware())
	_ = r.SetTrustedProxies(nil)

	// health
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := d.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	RegisterRoutes(r.Group("/api"), d)
	return r
}

// RegisterRoutes вешает /products и /seed на группу
func RegisterRoutes(rg *gin.RouterGroup, d Deps) {
	productHandler := NewProductHandler(d.Products)
	seedHandler := NewSeedHandler(d.Seeder)

	productRoutes := rg.Group("/products")
	{
		productRoutes.POST("", productHandler.Create)
		productRoutes.GET("", productHandler.FindAll)
		productRoutes.GET("/:term", productHandler.FindOne)
		productRoutes.PATCH("/:id", productHandler.Update)
		productRoutes.DELETE("/:id", productHandler.Remove)
	}

	rg.GET("/seed", RequireSeedToken(d.SeedTokenHash), seedHandler.Run)
}
