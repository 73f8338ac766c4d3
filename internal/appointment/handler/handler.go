package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/barberdesk/core-service/internal/appointment"
	"github.com/barberdesk/core-service/internal/appointment/dto"
	"github.com/barberdesk/core-service/internal/model"
	"github.com/barberdesk/core-service/internal/money"
	"github.com/barberdesk/core-service/internal/pkg/httperr"
)

type AppointmentHandler struct {
	uc     appointment.UseCase
	logger *zap.Logger
}

func NewAppointmentHandler(uc appointment.UseCase, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{uc: uc, logger: log}
}

func (h *AppointmentHandler) Register(e *echo.Echo) {
	e.POST("/appointments", h.Schedule)
	e.GET("/appointments", h.List)
	e.GET("/appointments/:id", h.Get)
	e.PUT("/appointments/:id", h.Update)
	e.POST("/appointments/:id/confirm", h.Confirm)
	e.POST("/appointments/:id/cancel", h.Cancel)
}

type appointmentRequest struct {
	ClientName string  `json:"client_name"`
	Service    string  `json:"service"`
	Date       string  `json:"date"`
	Time       string  `json:"time"`
	Status     string  `json:"status,omitempty"`
	PriceCents *int64  `json:"price_cents"`
	StaffID    *string `json:"staff_id"`
	Notes      *string `json:"notes"`
}

func priceOf(cents *int64) *money.Money {
	if cents == nil {
		return nil
	}
	m := money.FromCents(*cents)
	return &m
}

func (h *AppointmentHandler) Schedule(c echo.Context) error {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	appt, err := h.uc.Schedule(c.Request().Context(), &dto.ScheduleAppointmentInput{
		ClientName: req.ClientName,
		Service:    model.ServiceKind(req.Service),
		Date:       model.Date(req.Date),
		Time:       model.ClockTime(req.Time),
		Price:      priceOf(req.PriceCents),
		StaffID:    req.StaffID,
		Notes:      req.Notes,
	})
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, appt)
}

func (h *AppointmentHandler) Update(c echo.Context) error {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	appt, err := h.uc.Update(c.Request().Context(), c.Param("id"), &dto.UpdateAppointmentInput{
		ClientName: req.ClientName,
		Service:    model.ServiceKind(req.Service),
		Date:       model.Date(req.Date),
		Time:       model.ClockTime(req.Time),
		Status:     model.AppointmentStatus(req.Status),
		Price:      priceOf(req.PriceCents),
		StaffID:    req.StaffID,
		Notes:      req.Notes,
	})
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) Confirm(c echo.Context) error {
	appt, err := h.uc.Transition(c.Request().Context(), c.Param("id"), model.StatusConfirmed)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) Cancel(c echo.Context) error {
	appt, err := h.uc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) Get(c echo.Context) error {
	appt, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) List(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context())
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
