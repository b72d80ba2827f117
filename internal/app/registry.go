package app

import (
	"biztime/internal/company"
	"biztime/internal/industry"
	"biztime/internal/invoice"
	"biztime/internal/messaging/kafka"
	"biztime/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	companyRepo := company.NewRepository(db)
	invoiceRepo := invoice.NewRepository(db)
	industryRepo := industry.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	companyService := company.NewService(db, companyRepo, rdb)
	invoiceService := invoice.NewServiceWithOutbox(db, invoiceRepo, outboxRepo)
	industryService := industry.NewService(db, industryRepo, rdb)

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService)
	invoiceHandler := invoice.NewHandler(invoiceService)
	industryHandler := industry.NewHandler(industryService)

	// --- Routes Registration ---
	api := router.Group("")
	api.Use(
		middleware.RequestID(),
		middleware.RateLimitByIP(50, 100),
	)
	{
		company.RegisterRoutes(api, companyHandler)
		invoice.RegisterRoutes(api, invoiceHandler)
		industry.RegisterRoutes(api, industryHandler)
	}

	return nil
}
