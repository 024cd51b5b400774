package handlers

import (
	"net/http"
	"time"

	response "freightdesk/internal/adapter/http/dto/response"
	"freightdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DashboardHandler renders the role-specific landing screen. The same
// route serves both roles; the view model differs by session role.
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) Overview(c *gin.Context) {
	session, _ := SessionFromContext(c)

	stats, rfqs, err := h.usecase.Overview(c.Request.Context(), session)
	if err != nil {
		respondError(c, mapUpstreamError(err))
		return
	}

	if session.IsVendor() {
		c.JSON(http.StatusOK, response.BuildVendorDashboard(stats, rfqs))
		return
	}
	c.JSON(http.StatusOK, response.BuildOrgDashboard(stats, rfqs, time.Now()))
}
