package router

import (
	"database/sql"

	"incubator_backend/internal/handlers"
	"incubator_backend/internal/middleware"
	"incubator_backend/internal/repositories"
	"incubator_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	attachmentRepo := repositories.NewAttachmentRepository(db)
	userRepo := repositories.NewUserRepository(db)
	startupRepo := repositories.NewStartupRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	mediaRepo := repositories.NewMediaRepository(db)
	tenderRepo := repositories.NewTenderRepository(db)
	internshipRepo := repositories.NewInternshipRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	partnerRepo := repositories.NewPartnerRepository(db)
	newsletterRepo := repositories.NewNewsletterRepository(db)
	stockRepo := repositories.NewStockRepository(db)
	carouselRepo := repositories.NewCarouselRepository(db)
	teamRepo := repositories.NewTeamRepository(db)
	roadmapRepo := repositories.NewRoadmapRepository(db)
	eventRecordRepo := repositories.NewEventRecordRepository(db)
	ecosystemRepo := repositories.NewEcosystemRepository(db)
	contactRepo := repositories.NewContactRepository(db)

	// Initialize Services
	attachmentService := services.NewAttachmentService(db, attachmentRepo)
	authService := services.NewAuthService(db, userRepo, attachmentRepo)
	startupService := services.NewStartupService(db, startupRepo, attachmentRepo)
	eventService := services.NewEventService(db, eventRepo, attachmentRepo)
	mediaService := services.NewMediaService(db, mediaRepo, attachmentRepo)
	tenderService := services.NewTenderService(tenderRepo)
	internshipService := services.NewInternshipService(internshipRepo)
	projectService := services.NewProjectService(projectRepo)
	partnerService := services.NewPartnerService(db, partnerRepo, attachmentRepo)
	newsletterService := services.NewNewsletterService(db, newsletterRepo, attachmentRepo)
	stockService := services.NewStockService(stockRepo)
	carouselService := services.NewCarouselService(db, carouselRepo, attachmentRepo)
	teamService := services.NewTeamService(db, teamRepo, attachmentRepo)
	roadmapService := services.NewRoadmapService(roadmapRepo)
	eventRecordService := services.NewEventRecordService(eventRecordRepo)
	ecosystemService := services.NewEcosystemService(ecosystemRepo)
	contactService := services.NewContactService(contactRepo)

	// Initialize Handlers
	attachmentHandler := handlers.NewAttachmentHandler(attachmentService)
	authHandler := handlers.NewAuthHandler(authService)
	startupHandler := handlers.NewStartupHandler(startupService)
	eventHandler := handlers.NewEventHandler(eventService)
	mediaHandler := handlers.NewMediaHandler(mediaService)
	tenderHandler := handlers.NewTenderHandler(tenderService)
	internshipHandler := handlers.NewInternshipHandler(internshipService)
	projectHandler := handlers.NewProjectHandler(projectService)
	partnerHandler := handlers.NewPartnerHandler(partnerService)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService)
	stockHandler := handlers.NewStockHandler(stockService, attachmentService)
	carouselHandler := handlers.NewCarouselHandler(carouselService)
	teamHandler := handlers.NewTeamHandler(teamService)
	roadmapHandler := handlers.NewRoadmapHandler(roadmapService)
	eventRecordHandler := handlers.NewEventRecordHandler(eventRecordService)
	ecosystemHandler := handlers.NewEcosystemHandler(ecosystemService)
	contactHandler := handlers.NewContactHandler(contactService)

	apiV1 := engine.Group("/api/v1")

	// Public routes: registration, login and the read side of the site.
	SetupPublicAuthRoutes(apiV1.Group("/auth"), authHandler)
	SetupPublicContentRoutes(apiV1, startupHandler, eventHandler, mediaHandler,
		tenderHandler, partnerHandler, newsletterHandler, internshipHandler, attachmentHandler)
	SetupPublicSiteRoutes(apiV1, carouselHandler, teamHandler, roadmapHandler,
		ecosystemHandler, contactHandler)

	// Authenticated routes: profile management plus the admin write surface.
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupAuthenticatedAuthRoutes(authenticated.Group("/auth"), authHandler)
		SetupStockRoutes(authenticated, stockHandler)

		admin := authenticated.Group("")
		admin.Use(middleware.AdminOnly())
		{
			SetupAdminContentRoutes(admin, startupHandler, eventHandler, mediaHandler,
				tenderHandler, partnerHandler, newsletterHandler)
			SetupAdminSiteRoutes(admin, carouselHandler, teamHandler, roadmapHandler,
				ecosystemHandler, contactHandler)
			SetupInternshipRoutes(admin, internshipHandler)
			SetupProjectRoutes(admin, projectHandler)
			SetupEventRecordRoutes(admin, eventRecordHandler)
		}
	}
}
