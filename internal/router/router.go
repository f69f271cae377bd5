package router

import (
	"net/http"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateMeet(c *ginext.Context)
	ListMeets(c *ginext.Context)
	GetMeet(c *ginext.Context)
	UpdateMeet(c *ginext.Context)
	DeleteMeet(c *ginext.Context)
	TransitionMeet(c *ginext.Context)
	PerformMeetAction(c *ginext.Context)
	ListAttendees(c *ginext.Context)
	SetAttendeeStatus(c *ginext.Context)
	ListMessages(c *ginext.Context)
	MarkMessageRead(c *ginext.Context)

	GetPublicMeet(c *ginext.Context)
	CheckDuplicate(c *ginext.Context)
	Apply(c *ginext.Context)
	EditApplication(c *ginext.Context)
	WithdrawApplication(c *ginext.Context)

	InboundMail(c *ginext.Context)

	CreateUser(c *ginext.Context)
	Me(c *ginext.Context)
}

func InitRouter(mode string, h Handler, tokens middleware.TokenVerifier, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.POST("/users", h.CreateUser)
		api.POST("/inbound/mail", h.InboundMail)
	}

	private := api.Group("", middleware.RequireAuth(tokens))
	{
		private.GET("/users/me", h.Me)

		// Meets
		private.POST("/meets", h.CreateMeet)
		private.GET("/meets", h.ListMeets)
		private.GET("/meets/:id", h.GetMeet)
		private.PUT("/meets/:id", h.UpdateMeet)
		private.DELETE("/meets/:id", h.DeleteMeet)
		private.POST("/meets/:id/status", h.TransitionMeet)
		private.POST("/meets/:id/actions/:action", h.PerformMeetAction)

		// Attendees
		private.GET("/meets/:id/attendees", h.ListAttendees)
		private.PATCH("/meets/:id/attendees/:attendeeId", h.SetAttendeeStatus)

		// Messages
		private.GET("/meets/:id/messages", h.ListMessages)
		private.POST("/messages/:id/read", h.MarkMessageRead)
	}

	public := api.Group("/public", middleware.OptionalAuth(tokens))
	{
		public.GET("/meets/:code", h.GetPublicMeet)
		public.POST("/meets/:code/duplicate-check", h.CheckDuplicate)
		public.POST("/meets/:code/applications", h.Apply)
		public.PUT("/meets/:code/applications/:attendeeId", h.EditApplication)
		public.DELETE("/meets/:code/applications/:attendeeId", h.WithdrawApplication)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
