// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vrcadore/ecommerce-backend/internal/config"
	"github.com/vrcadore/ecommerce-backend/internal/handlers"
	"github.com/vrcadore/ecommerce-backend/internal/middleware"
	"github.com/vrcadore/ecommerce-backend/internal/services"
)

// Setup wires services, handlers and middleware into the HTTP surface.
func Setup(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	brandService := services.NewBrandService(db)
	attributeService := services.NewAttributeService(db)
	productService := services.NewProductService(db)
	productLineService := services.NewProductLineService(db)
	productImageService := services.NewProductImageService(db, storageService)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	brandHandler := handlers.NewBrandHandler(brandService)
	attributeHandler := handlers.NewAttributeHandler(attributeService)
	productHandler := handlers.NewProductHandler(productService)
	productLineHandler := handlers.NewProductLineHandler(productLineService)
	productImageHandler := handlers.NewProductImageHandler(productImageService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	if cfg.Environment != "test" {
		r.Use(middleware.GeneralRateLimit())
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	if cfg.Environment != "test" {
		auth.Use(middleware.AuthRateLimit())
	}
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthRequired())
	{
		users := protected.Group("/users")
		{
			users.GET("/", userHandler.List)
			users.GET("/:username", userHandler.Retrieve)
		}

		categories := protected.Group("/categories")
		{
			categories.GET("/", categoryHandler.List)
			categories.POST("/", categoryHandler.Create)
			categories.GET("/:slug", categoryHandler.Retrieve)
			categories.PUT("/:slug", categoryHandler.Update)
			categories.PATCH("/:slug", categoryHandler.Update)
			categories.DELETE("/:slug", categoryHandler.Destroy)
			categories.GET("/:slug/ancestors", categoryHandler.Ancestors)
			categories.GET("/:slug/descendants", categoryHandler.Descendants)
			categories.POST("/:slug/move", categoryHandler.Move)
		}

		brands := protected.Group("/brands")
		{
			brands.GET("/", brandHandler.List)
			brands.POST("/", brandHandler.Create)
			brands.GET("/:slug", brandHandler.Retrieve)
			brands.PUT("/:slug", brandHandler.Update)
			brands.PATCH("/:slug", brandHandler.Update)
			brands.DELETE("/:slug", brandHandler.Destroy)
		}

		attributes := protected.Group("/attributes")
		{
			attributes.GET("/", attributeHandler.List)
			attributes.POST("/", attributeHandler.Create)
			attributes.GET("/:slug", attributeHandler.Retrieve)
			attributes.PUT("/:slug", attributeHandler.Update)
			attributes.PATCH("/:slug", attributeHandler.Update)
			attributes.DELETE("/:slug", attributeHandler.Destroy)
		}

		products := protected.Group("/products")
		{
			products.GET("/", productHandler.List)
			products.POST("/", productHandler.Create)
			products.GET("/:slug", productHandler.Retrieve)
			products.PUT("/:slug", productHandler.Update)
			products.PATCH("/:slug", productHandler.Update)
			products.DELETE("/:slug", productHandler.Destroy)
		}

		productLines := protected.Group("/product_lines")
		{
			productLines.GET("/", productLineHandler.List)
			productLines.POST("/", productLineHandler.Create)
			productLines.GET("/:sku", productLineHandler.Retrieve)
			productLines.PUT("/:sku", productLineHandler.Update)
			productLines.PATCH("/:sku", productLineHandler.Update)
			productLines.DELETE("/:sku", productLineHandler.Destroy)
		}

		productImages := protected.Group("/product_image")
		if cfg.Environment != "test" {
			productImages.Use(middleware.UploadRateLimit())
		}
		{
			productImages.GET("/", productImageHandler.List)
			productImages.POST("/", productImageHandler.Create)
			productImages.GET("/:id", productImageHandler.Retrieve)
			productImages.PUT("/:id", productImageHandler.Update)
			productImages.PATCH("/:id", productImageHandler.Update)
			productImages.DELETE("/:id", productImageHandler.Destroy)
		}
	}

	return r, nil
}
