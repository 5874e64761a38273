package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/tailor-records/config"
	"github.com/yeremiapane/tailor-records/controllers"
	"github.com/yeremiapane/tailor-records/middlewares"
	"github.com/yeremiapane/tailor-records/repository"
	"github.com/yeremiapane/tailor-records/web"
	"gorm.io/gorm"
)

// SetupRouter wires every route against db. cfg may be nil, in which case
// development defaults apply.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg == nil {
		cfg = &config.Config{RateLimit: 50, CORSOrigin: "*"}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders(cfg.IsProduction()))
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigin))
	r.Use(middlewares.NewRateLimiter(cfg.RateLimit, cfg.RateWindow).RateLimit())

	customerCtrl := controllers.NewCustomerController(repository.NewCustomerRepository(db))

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	customers := r.Group("/customers")
	{
		customers.GET("", customerCtrl.GetAllCustomers)
		customers.POST("", customerCtrl.CreateCustomer)
		customers.GET("/:id", customerCtrl.GetCustomerByID)
		customers.PUT("/:id", customerCtrl.UpdateCustomer)
		customers.DELETE("/:id", customerCtrl.DeleteCustomer)
		customers.GET("/:id/measurement-sheet", customerCtrl.GetMeasurementSheet)
	}

	r.GET("/stats", customerCtrl.GetStats)
	r.GET("/export", customerCtrl.ExportData)

	return r
}
