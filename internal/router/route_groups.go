package router

import (
	"incubator_backend/internal/handlers"
	"incubator_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupPublicAuthRoutes registers registration and login.
func SetupPublicAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.POST("/register", authHandler.Register)
	group.POST("/login", authHandler.Login)
}

// SetupAuthenticatedAuthRoutes registers the profile endpoints.
func SetupAuthenticatedAuthRoutes(group *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	group.GET("/me", authHandler.GetMe)
	group.PUT("/me/photo", authHandler.UploadProfilePhoto)
	group.DELETE("/me/photo", authHandler.DeleteProfilePhoto)
}

// SetupPublicContentRoutes registers the read side of the site: everything a
// visitor sees without logging in, including stored images and PDFs.
func SetupPublicContentRoutes(rg *gin.RouterGroup,
	startupHandler *handlers.StartupHandler,
	eventHandler *handlers.EventHandler,
	mediaHandler *handlers.MediaHandler,
	tenderHandler *handlers.TenderHandler,
	partnerHandler *handlers.PartnerHandler,
	newsletterHandler *handlers.NewsletterHandler,
	internshipHandler *handlers.InternshipHandler,
	attachmentHandler *handlers.AttachmentHandler) {

	rg.GET("/startups", startupHandler.GetStartups)
	rg.GET("/startups/:id", startupHandler.GetStartupByID)

	rg.GET("/events", eventHandler.GetEvents)
	rg.GET("/events/:id", eventHandler.GetEventByID)

	rg.GET("/media", mediaHandler.GetMedia)
	rg.GET("/media/:id", mediaHandler.GetMediaByID)

	rg.GET("/tenders", tenderHandler.GetTenders)
	rg.GET("/tenders/:id", tenderHandler.GetTenderByID)

	rg.GET("/partners", partnerHandler.GetPartners)
	rg.GET("/partners/:id", partnerHandler.GetPartnerByID)

	rg.GET("/newsletters", newsletterHandler.GetNewsletters)
	rg.GET("/newsletters/:id", newsletterHandler.GetNewsletterByID)

	// Public ID card verification by intern number.
	rg.GET("/internships/verify/:internNo", internshipHandler.GetInternshipByInternNo)

	rg.GET("/files/:id", attachmentHandler.GetAttachment)
}

// SetupAdminContentRoutes registers the write surface of the public content.
func SetupAdminContentRoutes(rg *gin.RouterGroup,
	startupHandler *handlers.StartupHandler,
	eventHandler *handlers.EventHandler,
	mediaHandler *handlers.MediaHandler,
	tenderHandler *handlers.TenderHandler,
	partnerHandler *handlers.PartnerHandler,
	newsletterHandler *handlers.NewsletterHandler) {

	rg.POST("/startups", startupHandler.CreateStartup)
	rg.PUT("/startups/:id", startupHandler.UpdateStartup)
	rg.DELETE("/startups/:id", startupHandler.DeleteStartup)
	rg.PUT("/startups/:id/image", startupHandler.UploadStartupImage)

	rg.POST("/events", eventHandler.CreateEvent)
	rg.PUT("/events/:id", eventHandler.UpdateEvent)
	rg.DELETE("/events/:id", eventHandler.DeleteEvent)
	rg.PUT("/events/:id/poster", eventHandler.UploadEventPoster)

	rg.POST("/media", mediaHandler.CreateMedia)
	rg.PUT("/media/:id", mediaHandler.UpdateMedia)
	rg.DELETE("/media/:id", mediaHandler.DeleteMedia)
	rg.PUT("/media/:id/image", mediaHandler.UploadMediaImage)

	rg.POST("/tenders", tenderHandler.CreateTender)
	rg.PUT("/tenders/:id", tenderHandler.UpdateTender)
	rg.DELETE("/tenders/:id", tenderHandler.DeleteTender)

	rg.POST("/partners", partnerHandler.CreatePartner)
	rg.PUT("/partners/:id", partnerHandler.UpdatePartner)
	rg.DELETE("/partners/:id", partnerHandler.DeletePartner)
	rg.PUT("/partners/:id/image", partnerHandler.UploadPartnerImage)

	rg.POST("/newsletters", newsletterHandler.CreateNewsletter)
	rg.PUT("/newsletters/:id", newsletterHandler.UpdateNewsletter)
	rg.DELETE("/newsletters/:id", newsletterHandler.DeleteNewsletter)
	rg.PUT("/newsletters/:id/files", newsletterHandler.UploadNewsletterFiles)
}

// SetupPublicSiteRoutes registers the read side of the site chrome: the
// homepage carousel, team page, growth timeline, headline counters and
// footer contact block.
func SetupPublicSiteRoutes(rg *gin.RouterGroup,
	carouselHandler *handlers.CarouselHandler,
	teamHandler *handlers.TeamHandler,
	roadmapHandler *handlers.RoadmapHandler,
	ecosystemHandler *handlers.EcosystemHandler,
	contactHandler *handlers.ContactHandler) {

	// Visitors only see active slides; the full list is admin only.
	rg.GET("/carousel/display", carouselHandler.GetActiveCarouselImages)

	rg.GET("/team", teamHandler.GetTeamMembers)
	rg.GET("/team/:id", teamHandler.GetTeamMemberByID)

	rg.GET("/roadmap", roadmapHandler.GetRoadmapItems)
	rg.GET("/roadmap/years", roadmapHandler.GetRoadmapYears)
	rg.GET("/roadmap/stats", roadmapHandler.GetRoadmapStats)
	rg.GET("/roadmap/:id", roadmapHandler.GetRoadmapItemByID)

	rg.GET("/ecosystem", ecosystemHandler.GetEcosystemMetrics)
	rg.GET("/contact", contactHandler.GetContactInfo)
}

// SetupAdminSiteRoutes registers the write surface of the site chrome.
func SetupAdminSiteRoutes(rg *gin.RouterGroup,
	carouselHandler *handlers.CarouselHandler,
	teamHandler *handlers.TeamHandler,
	roadmapHandler *handlers.RoadmapHandler,
	ecosystemHandler *handlers.EcosystemHandler,
	contactHandler *handlers.ContactHandler) {

	rg.GET("/carousel", carouselHandler.GetCarouselImages)
	rg.GET("/carousel/:id", carouselHandler.GetCarouselImageByID)
	rg.POST("/carousel", carouselHandler.CreateCarouselImage)
	rg.PUT("/carousel/:id", carouselHandler.UpdateCarouselImage)
	rg.DELETE("/carousel/:id", carouselHandler.DeleteCarouselImage)
	rg.PUT("/carousel/:id/image", carouselHandler.UploadCarouselImageFile)
	rg.PATCH("/carousel/:id/status", carouselHandler.SetCarouselImageStatus)
	rg.PUT("/carousel/reorder", carouselHandler.ReorderCarouselImages)

	rg.POST("/team", teamHandler.CreateTeamMember)
	rg.PUT("/team/:id", teamHandler.UpdateTeamMember)
	rg.DELETE("/team/:id", teamHandler.DeleteTeamMember)
	rg.PUT("/team/:id/photo", teamHandler.UploadTeamMemberPhoto)
	rg.PUT("/team/reorder", teamHandler.ReorderTeamMembers)

	rg.POST("/roadmap", roadmapHandler.CreateRoadmapItem)
	rg.PUT("/roadmap/:id", roadmapHandler.UpdateRoadmapItem)
	rg.DELETE("/roadmap/:id", roadmapHandler.DeleteRoadmapItem)

	rg.PUT("/ecosystem", ecosystemHandler.UpdateEcosystemMetrics)
	rg.PUT("/contact", contactHandler.UpdateContactInfo)
}

// SetupEventRecordRoutes registers paid event registration management. The
// whole surface is admin only; registrations come in from the payment desk,
// not from visitors.
func SetupEventRecordRoutes(rg *gin.RouterGroup, eventRecordHandler *handlers.EventRecordHandler) {
	rg.POST("/event-records", eventRecordHandler.CreateEventRecord)
	rg.GET("/event-records", eventRecordHandler.GetEventRecords)
	rg.GET("/event-records/:id", eventRecordHandler.GetEventRecordByID)
	rg.PUT("/event-records/:id", eventRecordHandler.UpdateEventRecord)
	rg.DELETE("/event-records/:id", eventRecordHandler.DeleteEventRecord)
}

// SetupInternshipRoutes registers intern record management.
func SetupInternshipRoutes(rg *gin.RouterGroup, internshipHandler *handlers.InternshipHandler) {
	rg.POST("/internships", internshipHandler.CreateInternship)
	rg.GET("/internships", internshipHandler.GetInternships)
	rg.GET("/internships/:id", internshipHandler.GetInternshipByID)
	rg.PUT("/internships/:id", internshipHandler.UpdateInternship)
	rg.DELETE("/internships/:id", internshipHandler.DeleteInternship)
}

// SetupProjectRoutes registers lab project management.
func SetupProjectRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler) {
	rg.POST("/projects", projectHandler.CreateProject)
	rg.GET("/projects", projectHandler.GetProjects)
	rg.GET("/projects/:id", projectHandler.GetProjectByID)
	rg.PUT("/projects/:id", projectHandler.UpdateProject)
	rg.DELETE("/projects/:id", projectHandler.DeleteProject)
}

// SetupStockRoutes registers the inventory endpoints. Any authenticated user
// can read; count mutations, deletions and reconciliation are admin only.
// The /update-stock and /update-records paths match what the frontend
// already calls.
func SetupStockRoutes(rg *gin.RouterGroup, stockHandler *handlers.StockHandler) {
	rg.GET("/stock", stockHandler.GetStockItems)
	rg.GET("/stock/:stockId", stockHandler.GetStockItem)
	rg.GET("/update-records/:stockId", stockHandler.GetUpdateRecords)

	admin := rg.Group("")
	admin.Use(middleware.AdminOnly())
	{
		admin.POST("/stock", stockHandler.CreateStockItem)
		admin.PUT("/stock/:stockId/image", stockHandler.UploadStockImage)
		admin.DELETE("/stock/:stockId", stockHandler.DeleteStockItem)
		admin.POST("/update-stock", stockHandler.UpdateStock)
		admin.POST("/stock/:stockId/reconcile", stockHandler.ReconcileStock)
	}
}
