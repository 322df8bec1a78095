package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httpresp"
	ucClient "github.com/BruksfildServices01/cutcorp-booking/internal/usecase/client"
	ucDashboard "github.com/BruksfildServices01/cutcorp-booking/internal/usecase/dashboard"
)

// ======================================================
// CLIENTS
// ======================================================

type ClientHandler struct {
	list *ucClient.ListClients
}

func NewClientHandler(list *ucClient.ListClients) *ClientHandler {
	return &ClientHandler{list: list}
}

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.list.Execute(c.Request.Context(), c.Query("search"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, clients)
}

// ======================================================
// DASHBOARD
// ======================================================

type DashboardHandler struct {
	summary *ucDashboard.GetSummary
}

func NewDashboardHandler(summary *ucDashboard.GetSummary) *DashboardHandler {
	return &DashboardHandler{summary: summary}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	s, err := h.summary.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}
