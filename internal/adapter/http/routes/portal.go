package routes

import (
	"freightdesk/internal/adapter/http/handlers"
	"freightdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathRFQs = "/rfqs"
	PathBids = "/bids"
)

type portalHandlers struct {
	auth      *handlers.AuthHandler
	rfq       *handlers.RFQHandler
	bid       *handlers.BidHandler
	dashboard *handlers.DashboardHandler
	chat      *handlers.ChatHandler
}

func addPortalRoutes(rg *gin.RouterGroup, h portalHandlers, sessions usecase.ISessionUseCase) {
	rg.POST("/login", RedirectIfAuthenticated(sessions), h.auth.Login)
	rg.POST("/logout", h.auth.Logout)

	authed := rg.Group("", RequireSession(sessions))
	{
		authed.GET("/session", h.auth.Session)
		authed.GET("/dashboard", h.dashboard.Overview)
		authed.GET("/my-bids", h.bid.MyBids)

		rfqs := authed.Group(PathRFQs)
		{
			rfqs.GET("", h.rfq.List)
			rfqs.POST("", h.rfq.Create)
			rfqs.GET("/:id", h.rfq.Get)
			rfqs.POST("/:id/shipments", h.rfq.AddShipment)
			rfqs.POST("/:id/bids", h.bid.Submit)
			rfqs.POST("/:id/bids/:bid_id/award", h.bid.Award)
			rfqs.POST("/:id/bids/:bid_id/counter", h.bid.MakeCounter)
			rfqs.POST("/:id/bids/:bid_id/counter/accept", h.bid.AcceptCounter)
			rfqs.POST("/:id/bids/:bid_id/counter/reject", h.bid.RejectCounter)
		}

		bids := authed.Group(PathBids)
		{
			bids.GET("/:id/chat", h.chat.History)
			bids.POST("/:id/chat", h.chat.Post)
			bids.GET("/:id/chat/stream", h.chat.Stream)
		}
	}
}
