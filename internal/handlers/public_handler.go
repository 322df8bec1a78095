package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/cutcorp-booking/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/cutcorp-booking/internal/usecase/catalog"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	services     *ucCatalog.Services
	barbers      *ucCatalog.Barbers
	availability *ucAppointment.GetAvailability
	book         *ucAppointment.BookAppointment
	byPhone      *ucAppointment.ListByPhone
	cancelOwn    *ucAppointment.CancelOwn
}

func NewPublicHandler(
	services *ucCatalog.Services,
	barbers *ucCatalog.Barbers,
	availability *ucAppointment.GetAvailability,
	book *ucAppointment.BookAppointment,
	byPhone *ucAppointment.ListByPhone,
	cancelOwn *ucAppointment.CancelOwn,
) *PublicHandler {
	return &PublicHandler{
		services:     services,
		barbers:      barbers,
		availability: availability,
		book:         book,
		byPhone:      byPhone,
		cancelOwn:    cancelOwn,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AvailabilityQuery struct {
	BarberID  string `form:"barber_id" binding:"required"`
	ServiceID string `form:"service_id" binding:"required"`
	Date      string `form:"date" binding:"required,ymd"`
}

type BookRequest struct {
	ClientName string `json:"client_name" binding:"required"`
	Phone      string `json:"phone" binding:"required,phone"`
	ServiceID  string `json:"service_id" binding:"required"`
	BarberID   string `json:"barber_id" binding:"required"`
	Date       string `json:"date" binding:"required,ymd"`
	Time       string `json:"time" binding:"required,hhmm"`
}

type CancelOwnRequest struct {
	Phone string `json:"phone" binding:"required,phone"`
}

// ======================================================
// CATALOG
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	list, err := h.services.List(c.Request.Context(), true)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	list, err := h.barbers.List(c.Request.Context(), true)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

// ======================================================
// SLOTS / BOOKING
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	var q AvailabilityQuery
	if !bindQuery(c, &q) {
		return
	}

	res, err := h.availability.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		BarberID:  q.BarberID,
		ServiceID: q.ServiceID,
		Date:      q.Date,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, res)
}

func (h *PublicHandler) Book(c *gin.Context) {
	var req BookRequest
	if !bind(c, &req) {
		return
	}

	res, err := h.book.Execute(c.Request.Context(), ucAppointment.BookInput{
		ClientName: req.ClientName,
		Phone:      req.Phone,
		ServiceID:  req.ServiceID,
		BarberID:   req.BarberID,
		Date:       req.Date,
		Time:       req.Time,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, res)
}

// ======================================================
// MY APPOINTMENTS
// ======================================================

func (h *PublicHandler) ListMine(c *gin.Context) {
	list, err := h.byPhone.Execute(c.Request.Context(), c.Query("phone"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *PublicHandler) CancelMine(c *gin.Context) {
	var req CancelOwnRequest
	if !bind(c, &req) {
		return
	}

	ap, err := h.cancelOwn.Execute(c.Request.Context(), c.Param("id"), req.Phone)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}
