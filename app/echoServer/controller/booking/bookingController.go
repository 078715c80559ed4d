package booking

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/primeitclub/the-newbies/app/echoServer/jwtx"
	"github.com/primeitclub/the-newbies/model"
	bookingrepo "github.com/primeitclub/the-newbies/repository/booking"
	bookingsvc "github.com/primeitclub/the-newbies/service/booking"
)

type Controller struct {
	Svc bookingsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/bookings
func (h *Controller) Create(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	var req CreateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "start_date must be RFC3339"})
	}
	var end *time.Time
	if req.EndDate != nil {
		t, err := time.Parse(time.RFC3339, *req.EndDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "end_date must be RFC3339"})
		}
		end = &t
	}

	b, err := h.Svc.Create(c.Request().Context(), uid, req.PropertyID, start, end)
	if err != nil {
		switch bookingsvc.Code(err) {
		case bookingsvc.ErrPropertyNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "property not found"})
		case bookingsvc.ErrNotAvailable:
			return c.JSON(http.StatusConflict, echo.Map{"message": "property not available"})
		case bookingsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			h.Log.Error("booking create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, b)
}

// GET /v1/bookings/my?role=student|landlord
func (h *Controller) My(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	role := bookingrepo.RoleStudent
	if c.QueryParam("role") == string(bookingrepo.RoleLandlord) {
		if ut, _ := jwtx.UserTypeFromContext(c); ut != string(model.UserLandlord) {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		}
		role = bookingrepo.RoleLandlord
	}

	page, err := h.Svc.ListFor(c.Request().Context(), uid, role)
	if err != nil {
		h.Log.Error("booking list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, page)
}

// PATCH /v1/bookings/:id/status  (landlord of the booking)
func (h *Controller) SetStatus(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	var req SetStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	err = h.Svc.SetStatus(c.Request().Context(), uid, c.Param("id"), model.BookingStatus(req.Status))
	if err != nil {
		switch bookingsvc.Code(err) {
		case bookingsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
		case bookingsvc.ErrNotOwner:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		case bookingsvc.ErrInvalidTransition:
			return c.JSON(http.StatusConflict, echo.Map{"message": "invalid status transition"})
		default:
			h.Log.Error("booking status", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "updated"})
}

// PATCH /v1/bookings/:id/payment  (student pays, landlord refunds)
func (h *Controller) SetPaymentStatus(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	var req SetPaymentStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	err = h.Svc.SetPaymentStatus(c.Request().Context(), uid, c.Param("id"), model.PaymentStatus(req.PaymentStatus))
	if err != nil {
		switch bookingsvc.Code(err) {
		case bookingsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
		case bookingsvc.ErrNotOwner:
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		case bookingsvc.ErrInvalidTransition:
			return c.JSON(http.StatusConflict, echo.Map{"message": "invalid payment transition"})
		default:
			h.Log.Error("booking payment", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "updated"})
}
