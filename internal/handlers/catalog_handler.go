package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cutcorp-booking/internal/httperr"
	"github.com/BruksfildServices01/cutcorp-booking/internal/httpresp"
	"github.com/BruksfildServices01/cutcorp-booking/internal/imaging"
	"github.com/BruksfildServices01/cutcorp-booking/internal/middleware"
	"github.com/BruksfildServices01/cutcorp-booking/internal/models"
	ucCatalog "github.com/BruksfildServices01/cutcorp-booking/internal/usecase/catalog"
)

// ======================================================
// HANDLER
// ======================================================

type CatalogHandler struct {
	services *ucCatalog.Services
	barbers  *ucCatalog.Barbers
}

func NewCatalogHandler(services *ucCatalog.Services, barbers *ucCatalog.Barbers) *CatalogHandler {
	return &CatalogHandler{services: services, barbers: barbers}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	DurationMin int      `json:"duration_min" binding:"required"`
}

type CreateBarberRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone" binding:"omitempty,phone"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type ScheduleRequest struct {
	Days models.Schedule `json:"days" binding:"required"`
}

type LunchRequest struct {
	Start string `json:"lunch_start" binding:"omitempty,hhmm"`
	End   string `json:"lunch_end" binding:"omitempty,hhmm"`
}

// ======================================================
// SERVICES
// ======================================================

func (h *CatalogHandler) ListServices(c *gin.Context) {
	list, err := h.services.List(c.Request.Context(), false)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if !bind(c, &req) {
		return
	}

	s, err := h.services.Create(c.Request.Context(), middleware.UserID(c), ucCatalog.ServiceInput{
		Name:        req.Name,
		Price:       *req.Price,
		DurationMin: req.DurationMin,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, s)
}

func (h *CatalogHandler) SetServiceActive(c *gin.Context) {
	var req SetActiveRequest
	if !bind(c, &req) {
		return
	}

	s, err := h.services.SetActive(c.Request.Context(), middleware.UserID(c), c.Param("id"), *req.Active)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, s)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.services.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(204)
}

// ======================================================
// BARBERS
// ======================================================

func (h *CatalogHandler) ListBarbers(c *gin.Context) {
	list, err := h.barbers.List(c.Request.Context(), false)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *CatalogHandler) GetBarber(c *gin.Context) {
	b, err := h.barbers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *CatalogHandler) CreateBarber(c *gin.Context) {
	var req CreateBarberRequest
	if !bind(c, &req) {
		return
	}

	b, err := h.barbers.Create(c.Request.Context(), middleware.UserID(c), ucCatalog.BarberInput{
		Name:      req.Name,
		Specialty: req.Specialty,
		Phone:     req.Phone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, b)
}

func (h *CatalogHandler) SetBarberActive(c *gin.Context) {
	var req SetActiveRequest
	if !bind(c, &req) {
		return
	}

	b, err := h.barbers.SetActive(c.Request.Context(), middleware.UserID(c), c.Param("id"), *req.Active)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *CatalogHandler) SetSchedule(c *gin.Context) {
	var req ScheduleRequest
	if !bind(c, &req) {
		return
	}

	b, err := h.barbers.SetSchedule(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Days)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *CatalogHandler) SetLunch(c *gin.Context) {
	var req LunchRequest
	if !bind(c, &req) {
		return
	}

	b, err := h.barbers.SetLunch(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Start, req.End)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, b)
}

// UploadPhoto expects a multipart form with the image under "photo".
func (h *CatalogHandler) UploadPhoto(c *gin.Context) {
	fh, err := c.FormFile("photo")
	if err != nil {
		httperr.Respond(c, httperr.ErrValidation("photo"))
		return
	}
	if fh.Size > imaging.MaxUploadBytes {
		httperr.Respond(c, httperr.ErrBusiness(httperr.CodeInvalidImage))
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, httperr.ErrValidation("photo"))
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		httperr.Respond(c, httperr.ErrValidation("photo"))
		return
	}

	b, err := h.barbers.UploadPhoto(c.Request.Context(), middleware.UserID(c), c.Param("id"), raw)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *CatalogHandler) DeleteBarber(c *gin.Context) {
	if err := h.barbers.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(204)
}
