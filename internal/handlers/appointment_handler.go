package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/cutcorp-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httpresp"
	"github.com/BruksfildServices01/cutcorp-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/cutcorp-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	agenda   *ucAppointment.ListAgenda
	complete *ucAppointment.CompleteAppointment
	cancel   *ucAppointment.CancelAppointment
	walkIn   *ucAppointment.RegisterWalkIn
	pause    *ucAppointment.CreatePause
	release  *ucAppointment.ReleasePause
}

func NewAppointmentHandler(
	agenda *ucAppointment.ListAgenda,
	complete *ucAppointment.CompleteAppointment,
	cancel *ucAppointment.CancelAppointment,
	walkIn *ucAppointment.RegisterWalkIn,
	pause *ucAppointment.CreatePause,
	release *ucAppointment.ReleasePause,
) *AppointmentHandler {
	return &AppointmentHandler{
		agenda:   agenda,
		complete: complete,
		cancel:   cancel,
		walkIn:   walkIn,
		pause:    pause,
		release:  release,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=done cancelled"`
}

type WalkInRequest struct {
	ServiceID  string `json:"service_id" binding:"required"`
	BarberID   string `json:"barber_id" binding:"required"`
	ClientName string `json:"client_name"`
}

type PauseRequest struct {
	BarberID string `json:"barber_id" binding:"required"`
	Date     string `json:"date" binding:"required,ymd"`
	Start    string `json:"start" binding:"required,hhmm"`
	End      string `json:"end" binding:"required,hhmm"`
}

// ======================================================
// AGENDA
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	list, err := h.agenda.Execute(c.Request.Context(), ucAppointment.AgendaFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		BarberID: c.Query("barber_id"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !bind(c, &req) {
		return
	}

	userID := middleware.UserID(c)
	id := c.Param("id")

	var err error
	switch domain.Status(req.Status) {
	case domain.StatusDone:
		_, err = h.complete.Execute(c.Request.Context(), userID, id)
	default:
		_, err = h.cancel.Execute(c.Request.Context(), userID, id)
	}
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{"id": id, "status": req.Status})
}

// ======================================================
// WALK-IN / PAUSE
// ======================================================

func (h *AppointmentHandler) WalkIn(c *gin.Context) {
	var req WalkInRequest
	if !bind(c, &req) {
		return
	}

	ap, err := h.walkIn.Execute(c.Request.Context(), middleware.UserID(c), ucAppointment.WalkInInput{
		ServiceID:  req.ServiceID,
		BarberID:   req.BarberID,
		ClientName: req.ClientName,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) CreatePause(c *gin.Context) {
	var req PauseRequest
	if !bind(c, &req) {
		return
	}

	ap, err := h.pause.Execute(c.Request.Context(), middleware.UserID(c), ucAppointment.PauseInput{
		BarberID: req.BarberID,
		Date:     req.Date,
		Start:    req.Start,
		End:      req.End,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) ReleasePause(c *gin.Context) {
	ap, err := h.release.Execute(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}
