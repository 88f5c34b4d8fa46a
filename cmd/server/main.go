// @title           Luxcert Backend API
// @version         1.0.0
// @description     Backend API for luxury-goods certification: draft intake, hosted checkout, certificate materialization and the partner inspection workflow.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"luxcert-backend/docs"
	"luxcert-backend/internal/config"
	"luxcert-backend/internal/database"
	"luxcert-backend/internal/handlers"
	"luxcert-backend/internal/mailer"
	"luxcert-backend/internal/middleware"
	"luxcert-backend/internal/services"
	"luxcert-backend/internal/stripe"
	"luxcert-backend/internal/supabase"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	// Update Swagger docs with dynamic base URL
	if baseURL, err := url.Parse(cfg.FrontendBaseURL); err == nil {
		docs.SwaggerInfo.Host = baseURL.Host
		if baseURL.Scheme == "https" {
			docs.SwaggerInfo.Schemes = []string{"https", "http"}
		} else {
			docs.SwaggerInfo.Schemes = []string{"http", "https"}
		}
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	migrator, err := database.NewMigrator(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	defer migrator.Close()
	if err := migrator.Run(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Info("Migrations completed successfully")

	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}

	stripeClient := stripe.NewClient(cfg.StripeAPIBaseURL, cfg.StripeSecretKey)
	mail := mailer.New(cfg)

	// Redis is optional: without it the email rate limiter degrades to
	// process-local counters.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := redisClient.Ping(redisClient.Context()).Err(); err != nil {
			log.Warnf("Redis unavailable, rate limiting falls back to local counters: %v", err)
			redisClient = nil
		}
	}

	identityService := services.NewIdentityService(supabaseClient.Supabase.Auth, dbClient, cfg.FrontendBaseURL, log)
	lifecycleService := services.NewLifecycleService(dbClient, stripeClient, identityService, mail, cfg.FrontendBaseURL, log)

	draftsHandler := handlers.NewDraftsHandler(dbClient, lifecycleService)
	checkoutHandler := handlers.NewCheckoutHandler(lifecycleService)
	certificatesHandler := handlers.NewCertificatesHandler(dbClient, lifecycleService)
	emailHandler := handlers.NewEmailHandler(mail)
	webhookHandler := handlers.NewWebhookHandler(cfg, lifecycleService, log)

	emailLimiter := middleware.NewRateLimiter(redisClient, 60*time.Second, 5)

	router := gin.Default()

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// Webhook (no auth, signature-verified)
	router.POST("/api/v1/webhooks/stripe", webhookHandler.HandleStripeWebhook)

	// Public certificate verification lookup
	router.GET("/api/v1/verify/:certificate_id", certificatesHandler.GetCertificate)

	// Generic outbound email (no auth, rate-limited)
	router.POST("/api/v1/email", middleware.RateLimitMiddleware(emailLimiter), emailHandler.SendEmail)

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	api.POST("/drafts", draftsHandler.UpsertDraft)
	api.POST("/drafts/:draft_id/checkout", checkoutHandler.CreateCheckoutSession)
	api.POST("/drafts/:draft_id/cancel", draftsHandler.CancelDraft)
	api.POST("/drafts/:draft_id/confirm-instore", checkoutHandler.ConfirmInStorePayment)
	api.POST("/payments/verify", checkoutHandler.VerifyPayment)

	api.POST("/certificates/:certificate_id/inspection", certificatesHandler.SubmitInspection)
	api.POST("/certificates/:certificate_id/report/complete", certificatesHandler.CompleteReport)
	api.POST("/certificates/:certificate_id/certify", certificatesHandler.FinalizeCertification)
	api.POST("/certificates/:certificate_id/resend-email", certificatesHandler.ResendCertificateEmail)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Infof("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
