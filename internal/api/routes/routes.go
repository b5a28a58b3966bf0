package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/product-reviews/internal/api/handlers"
	"github.com/princeprakhar/product-reviews/internal/api/middleware"
	"github.com/princeprakhar/product-reviews/internal/config"
	"github.com/princeprakhar/product-reviews/internal/services"
	"github.com/princeprakhar/product-reviews/internal/utils"
	"github.com/princeprakhar/product-reviews/pkg/logger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Answer 405 instead of 404 when the path exists for another verb.
	router.HandleMethodNotAllowed = true

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RateLimitMiddleware(cfg))

	utils.UseJSONFieldNames()

	// Initialize services
	productService := services.NewProductService(db)
	buyerService := services.NewBuyerService(db)
	reviewService := services.NewReviewService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	productHandler := handlers.NewProductHandler(productService)
	buyerHandler := handlers.NewBuyerHandler(buyerService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	router.GET("/health", healthHandler.Check)

	product := router.Group("/product")
	{
		product.GET("", productHandler.GetAllProducts)
		product.GET("/:id", productHandler.GetProduct)
		product.POST("", productHandler.CreateProduct)
		product.PUT("/:id", productHandler.UpdateProduct)
		product.DELETE("/:id", productHandler.DeleteProduct)
	}

	buyer := router.Group("/buyer")
	{
		buyer.GET("", buyerHandler.GetAllBuyers)
		buyer.GET("/:id", buyerHandler.GetBuyer)
		buyer.POST("", buyerHandler.CreateBuyer)
		buyer.PUT("/:id", buyerHandler.UpdateBuyer)
		buyer.DELETE("/:id", buyerHandler.DeleteBuyer)
	}

	// Reviews have no update, delete or single-review lookup.
	review := router.Group("/review")
	{
		review.GET("", reviewHandler.RequireProductID)
		review.GET("/:prod_id", reviewHandler.GetProductReviews)
		review.POST("", reviewHandler.CreateReview)
	}

	logger.Info("Routes initialized successfully")
}
