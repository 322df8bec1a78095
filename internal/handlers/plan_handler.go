package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httpresp"
	"github.com/BruksfildServices01/cutcorp-booking/internal/middleware"
	ucPlan "github.com/BruksfildServices01/cutcorp-booking/internal/usecase/plan"
)

type PlanHandler struct {
	list   *ucPlan.ListActivePlans
	create *ucPlan.CreatePlan
	cancel *ucPlan.CancelPlan
}

func NewPlanHandler(
	list *ucPlan.ListActivePlans,
	create *ucPlan.CreatePlan,
	cancel *ucPlan.CancelPlan,
) *PlanHandler {
	return &PlanHandler{list: list, create: create, cancel: cancel}
}

type CreatePlanRequest struct {
	ClientName string `json:"client_name" binding:"required"`
	Phone      string `json:"phone" binding:"required,phone"`
	BarberID   string `json:"barber_id" binding:"required"`
	ServiceID  string `json:"service_id" binding:"required"`
	Weekday    *int   `json:"weekday" binding:"required,min=0,max=6"`
	Time       string `json:"time" binding:"required,hhmm"`
}

func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, plans)
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req CreatePlanRequest
	if !bind(c, &req) {
		return
	}

	res, err := h.create.Execute(c.Request.Context(), middleware.UserID(c), ucPlan.CreatePlanInput{
		ClientName: req.ClientName,
		Phone:      req.Phone,
		BarberID:   req.BarberID,
		ServiceID:  req.ServiceID,
		Weekday:    *req.Weekday,
		Time:       req.Time,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, res)
}

func (h *PlanHandler) Cancel(c *gin.Context) {
	res, err := h.cancel.Execute(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, res)
}
