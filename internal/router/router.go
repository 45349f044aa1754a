package router

import (
	"time"

	"asha/config"
	"asha/internal/domain"
	"asha/internal/handler"
	"asha/internal/middleware"
	"asha/internal/repository"
	"asha/internal/service"
	"asha/internal/ws"
	"asha/pkg/cloudinary"
	"asha/pkg/razorpay"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, gateway razorpay.Gateway, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	programRepo := repository.NewProgramRepository(db)
	eventRepo := repository.NewEventRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	volunteerRepo := repository.NewVolunteerRepository(db)
	contactRepo := repository.NewContactRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	feed := ws.NewFeedHub(cfg.Donation.FeedHistory)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	donationSvc := service.NewDonationService(gateway, cfg.Razorpay.KeySecret, cfg.Donation.RedirectBase, donationRepo)
	forwardSvc := service.NewForwardService(&cfg.Forward)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, auditRepo)
	googleOAuthHandler := handler.NewGoogleOAuthHandler(cfg, authSvc)
	donationHandler := handler.NewDonationHandler(donationSvc, donationRepo, auditRepo, feed)
	programHandler := handler.NewProgramHandler(programRepo)
	eventHandler := handler.NewEventHandler(eventRepo)
	volunteerHandler := handler.NewVolunteerHandler(volunteerRepo, forwardSvc)
	contactHandler := handler.NewContactHandler(contactRepo, forwardSvc)
	uploadHandler := handler.NewUploadHandler(cloud)

	authMw := middleware.AuthRequired(&cfg.JWT)
	staffMw := middleware.RequireRole(domain.RoleAdmin, domain.RoleEditor)
	adminMw := middleware.RequireRole(domain.RoleAdmin)
	publicLimit := middleware.RateLimit(middleware.NewInMemoryRateLimiter(60, time.Minute))

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", publicLimit, authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.PATCH("/change-password", authMw, authHandler.ChangePassword)
			authGroup.GET("/google", googleOAuthHandler.Redirect)
			authGroup.GET("/google/callback", googleOAuthHandler.Callback)
		}

		// Public site
		api.GET("/programs", programHandler.ListPublic)
		api.GET("/programs/:slug", programHandler.GetPublic)
		api.GET("/events", eventHandler.ListUpcoming)
		api.GET("/events/:slug", eventHandler.GetPublic)
		api.POST("/volunteers", publicLimit, volunteerHandler.Create)
		api.POST("/contact", publicLimit, contactHandler.Create)

		// Donation payment core
		donations := api.Group("/donations")
		{
			donations.POST("/order", publicLimit, donationHandler.CreateOrder)
			donations.POST("/verify", publicLimit, donationHandler.Verify)
			donations.GET("/stats", donationHandler.Stats)
		}

		// CMS
		admin := api.Group("/admin")
		admin.Use(authMw, staffMw)
		{
			admin.GET("/programs", programHandler.ListAll)
			admin.POST("/programs", programHandler.Create)
			admin.PUT("/programs/:id", programHandler.Update)
			admin.DELETE("/programs/:id", programHandler.Delete)

			admin.GET("/events", eventHandler.ListAll)
			admin.POST("/events", eventHandler.Create)
			admin.PUT("/events/:id", eventHandler.Update)
			admin.DELETE("/events/:id", eventHandler.Delete)

			admin.POST("/uploads/image", uploadHandler.UploadImage)

			admin.GET("/donations", donationHandler.List)
			admin.GET("/volunteers", volunteerHandler.List)
			admin.PATCH("/volunteers/:id/status", volunteerHandler.UpdateStatus)
			admin.GET("/messages", contactHandler.List)

			admin.POST("/users", adminMw, authHandler.CreateUser)
		}
	}

	r.GET("/ws/donations", ws.UpgradeDonationFeed(feed))

	return r
}
