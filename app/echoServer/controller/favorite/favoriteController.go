package favorite

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/primeitclub/the-newbies/app/echoServer/jwtx"
	favoritesvc "github.com/primeitclub/the-newbies/service/favorite"
)

type Controller struct {
	Svc favoritesvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

type AddFavoriteReq struct {
	PropertyID string `json:"property_id" validate:"required"`
}

// POST /v1/favorites
func (h *Controller) Add(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	var req AddFavoriteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	f, err := h.Svc.Add(c.Request().Context(), uid, req.PropertyID)
	if err != nil {
		switch favoritesvc.Code(err) {
		case favoritesvc.ErrAlreadyFavorite:
			return c.JSON(http.StatusConflict, echo.Map{"message": "already in favorites"})
		case favoritesvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			h.Log.Error("favorite add", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, f)
}

// DELETE /v1/favorites/:propertyId
func (h *Controller) Remove(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	err = h.Svc.Remove(c.Request().Context(), uid, c.Param("propertyId"))
	if err != nil {
		switch favoritesvc.Code(err) {
		case favoritesvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not in favorites"})
		default:
			h.Log.Error("favorite remove", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "removed"})
}

// GET /v1/favorites
func (h *Controller) List(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	page, err := h.Svc.ListByUser(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("favorite list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, page)
}
