package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/controllers"
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	eventController *controllers.EventController,
	teamController *controllers.TeamController,
	eventAdminController *controllers.EventAdminController,
	feedController *controllers.FeedController,
	startupController *controllers.StartupController,
	internshipController *controllers.InternshipController,
	notificationController *controllers.NotificationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		// Current user profile and role switching
		users := authenticated.Group("/users/me")
		{
			users.GET("", userController.GetMe)
			users.PATCH("", userController.UpdateProfile)
			users.POST("/admin-mode", userController.RequestAdmin)
			users.POST("/student-mode", userController.RequestStudent)
		}

		// Events: reads for everyone, writes for event managers
		events := authenticated.Group("/events")
		{
			events.GET("", eventController.GetEvents)
			events.GET("/:id", eventController.GetEvent)
			events.GET("/:id/timeline", eventController.GetTimeline)
			events.GET("/:id/resources", eventController.GetResources)
			events.GET("/:id/faq", eventController.GetFAQs)
			events.GET("/:id/teams", teamController.ListTeams)
			events.GET("/:id/teams/:teamId", teamController.GetTeam)

			eventsManagerProtected := events.Group("")
			eventsManagerProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleOrganizer, models.RoleClub))
			{
				eventsManagerProtected.POST("", eventController.CreateEvent)
				eventsManagerProtected.PATCH("/:id", eventController.UpdateEvent)
				eventsManagerProtected.PATCH("/:id/status", eventController.UpdateEventStatus)
				eventsManagerProtected.DELETE("/:id", eventController.DeleteEvent)
			}

			// Team formation actions are student-only
			eventsStudentProtected := events.Group("")
			eventsStudentProtected.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				eventsStudentProtected.POST("/:id/teams", teamController.CreateTeam)
				eventsStudentProtected.POST("/:id/teams/:teamId/requests", teamController.RequestToJoin)
				eventsStudentProtected.POST("/:id/solo", teamController.ApplySolo)
			}

			// Formation dashboard; service layer checks event ownership
			admin := events.Group("/:id/admin")
			admin.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleOrganizer, models.RoleClub))
			{
				admin.GET("/summary", eventAdminController.GetSummary)
				admin.GET("/teams", eventAdminController.ListTeams)
				admin.PATCH("/teams/:teamId", eventAdminController.UpdateTeamStatus)
				admin.POST("/teams/lock", eventAdminController.LockFormation)
				admin.GET("/participants", eventAdminController.ListParticipants)
				admin.POST("/participants/:participantId/move", eventAdminController.MoveParticipant)
				admin.GET("/requests", eventAdminController.ListRequests)
				admin.PATCH("/requests/:requestId", eventAdminController.DecideJoinRequest)

				admin.POST("/resources", eventAdminController.CreateResource)
				admin.PATCH("/resources/:resourceId", eventAdminController.UpdateResource)
				admin.DELETE("/resources/:resourceId", eventAdminController.DeleteResource)
				admin.POST("/faq", eventAdminController.CreateFAQ)
				admin.PATCH("/faq/:faqId", eventAdminController.UpdateFAQ)
				admin.DELETE("/faq/:faqId", eventAdminController.DeleteFAQ)
			}
		}

		// Feed routes
		feed := authenticated.Group("/feed/posts")
		{
			feed.GET("", feedController.GetFeed)
			feed.POST("", feedController.CreatePost)
			feed.GET("/:id", feedController.GetPost)
			feed.DELETE("/:id", feedController.DeletePost)
			feed.GET("/:id/comments", feedController.GetComments)
			feed.POST("/:id/comments", feedController.CreateComment)
			feed.GET("/:id/like", feedController.GetLikeInfo)
			feed.POST("/:id/like", feedController.ToggleLike)
		}

		// Startup routes
		startups := authenticated.Group("/startups")
		{
			startups.GET("", startupController.GetStartups)
			startups.POST("", startupController.CreateStartup)
			startups.GET("/me", startupController.GetMyStartup)
			startups.GET("/:id", startupController.GetStartup)

			startupsAdminProtected := startups.Group("")
			startupsAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				startupsAdminProtected.PATCH("/:id/status", startupController.DecideStartup)
			}
		}

		// Internship routes
		internships := authenticated.Group("/internships")
		{
			internships.GET("", internshipController.GetInternships)
			internships.POST("", internshipController.CreateInternship)
			internships.GET("/:id", internshipController.GetInternship)
			internships.POST("/:id/applications", internshipController.Apply)
			internships.GET("/:id/applications", internshipController.GetApplications)
			internships.PATCH("/applications/:id", internshipController.DecideApplication)
		}

		// Notification routes
		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("/me", notificationController.GetMyNotifications)
			notifications.PATCH("/:id/read", notificationController.MarkRead)
		}
	}
}
