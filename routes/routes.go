package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/genialityco/events-api/config"
	"github.com/genialityco/events-api/controllers"
	"github.com/genialityco/events-api/middleware"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	auth := middleware.Auth(cfg)

	controllers.Organizations.Register(r.Group("/organizations"), cfg)
	controllers.Members.Register(r.Group("/members"), cfg)
	controllers.Speakers.Register(r.Group("/speakers"), cfg)
	controllers.Modules.Register(r.Group("/modules"), cfg)
	controllers.Certificates.Register(r.Group("/certificates"), cfg)
	controllers.Rooms.Register(r.Group("/rooms"), cfg)
	controllers.Highlights.Register(r.Group("/highlights"), cfg)
	controllers.Surveys.Register(r.Group("/surveys"), cfg)
	controllers.Users.Register(r.Group("/users"), cfg)

	events := r.Group("/events")
	{
		events.GET("/search", controllers.Events.Search(cfg))
		events.GET("", controllers.Events.FindAll(cfg))
		events.GET("/:id", controllers.GetEvent(cfg)) // ETag-aware
		events.POST("", controllers.Events.Create(cfg))
		events.PUT("/:id", controllers.Events.Update(cfg))
		events.PATCH("/:id", controllers.Events.Update(cfg))
		events.DELETE("/:id", controllers.Events.Remove(cfg))
	}

	agendas := r.Group("/agendas")
	{
		controllers.Agendas.Register(agendas, cfg)
		agendas.PUT("/:id/adjust-times", controllers.AdjustAgendaTimes(cfg))
	}

	attendees := r.Group("/attendees")
	{
		attendees.GET("/search", controllers.Attendees.Search(cfg))
		attendees.GET("", controllers.Attendees.FindAll(cfg))
		attendees.POST("", controllers.Attendees.Create(cfg))
		// Registered before /:id so the literal path wins.
		attendees.PUT("/certificate-download", controllers.RegisterCertificateDownload(cfg))
		attendees.GET("/:id", controllers.Attendees.FindOne(cfg))
		attendees.PUT("/:id", controllers.Attendees.Update(cfg))
		attendees.PATCH("/:id", controllers.Attendees.Update(cfg))
		attendees.DELETE("/:id", controllers.Attendees.Remove(cfg))
	}

	posters := r.Group("/posters")
	{
		controllers.Posters.Register(posters, cfg)
		posters.POST("/:id/vote", controllers.VotePoster(cfg))
	}

	news := r.Group("/news")
	{
		controllers.News.Register(news, cfg)
		news.PUT("/public/:id", controllers.ToggleNewsPublic(cfg))
		news.PATCH("/public/:id", controllers.ToggleNewsPublic(cfg))
	}

	templates := r.Group("/notification-templates")
	{
		controllers.NotificationTemplates.Register(templates, cfg)
		templates.POST("/:id/increment-sent", controllers.IncrementTemplateSent(cfg))
	}

	notifs := r.Group("/notifications")
	{
		notifs.POST("/create", controllers.CreateNotification(cfg))
		notifs.GET("/:id", controllers.ListUserNotifications(cfg))
		notifs.PUT("/:id/read", controllers.MarkNotificationRead(cfg))
		notifs.PUT("/:id/mark-all-read", controllers.MarkAllNotificationsRead(cfg))
		notifs.POST("/send", auth, controllers.SendNotification(cfg))
		notifs.POST("/send-massive", auth, controllers.SendMassiveNotification(cfg))
		notifs.POST("/send-from-template/:templateId", auth, controllers.SendFromTemplate(cfg))
	}

	documents := r.Group("/documents")
	{
		controllers.Documents.Register(documents, cfg)
		documents.POST("/upload", auth, controllers.UploadDocument(cfg))
	}
}
