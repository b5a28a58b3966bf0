package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/product-reviews/internal/config"
	"github.com/princeprakhar/product-reviews/internal/utils"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimitMiddleware limits each client to cfg.RateLimitRPS requests per
// second and path. A zero rate disables limiting.
func RateLimitMiddleware(cfg *config.Config) gin.HandlerFunc {
	if cfg.RateLimitRPS <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	rate := limiter.Rate{
		Period: time.Second,
		Limit:  int64(cfg.RateLimitRPS),
	}

	store := memory.NewStore()
	instance := limiter.New(store, rate, limiter.WithTrustForwardHeader(true))

	return mgin.NewMiddleware(instance,
		mgin.WithKeyGetter(func(c *gin.Context) string {
			return fmt.Sprintf("%s:%s", c.ClientIP(), c.Request.URL.Path)
		}),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			utils.SendError(c, http.StatusTooManyRequests, "Rate limit exceeded", nil)
		}),
	)
}
