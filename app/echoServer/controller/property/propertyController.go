package property

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/primeitclub/the-newbies/app/echoServer/jwtx"
	"github.com/primeitclub/the-newbies/model"
	propertysvc "github.com/primeitclub/the-newbies/service/property"
)

type Controller struct {
	Svc propertysvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// listing query defaults, matching the search form
const (
	defaultMinPrice = 3000
	defaultMaxPrice = 25000
	defaultLimit    = 12
)

// GET /v1/properties
func (h *Controller) List(c echo.Context) error {
	f := parseFilter(c)
	page, err := h.Svc.List(c.Request().Context(), f)
	if err != nil {
		h.Log.Error("property list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	for i := range page.Documents {
		fillPlaceholder(&page.Documents[i])
	}
	return c.JSON(http.StatusOK, page)
}

func parseFilter(c echo.Context) propertysvc.Filter {
	f := propertysvc.Filter{
		Location: c.QueryParam("location"),
		RoomType: c.QueryParam("roomType"),
		MinPrice: floatParam(c, "minPrice", defaultMinPrice),
		MaxPrice: floatParam(c, "maxPrice", defaultMaxPrice),
		Page:     intParam(c, "page", 1),
		Limit:    intParam(c, "limit", defaultLimit),
	}
	// the search box only ever matched the location field
	if f.Location == "" {
		f.Location = c.QueryParam("search")
	}
	if raw := c.QueryParam("amenities"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				f.Amenities = append(f.Amenities, a)
			}
		}
	}
	if raw := c.QueryParam("available"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			f.Available = &v
		}
	}
	return f
}

func floatParam(c echo.Context, name string, def float64) float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func intParam(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}
	return v
}

func fillPlaceholder(p *model.Property) {
	if len(p.Images) == 0 {
		p.Images = []string{model.PlaceholderImage}
	}
}

// GET /v1/properties/:id
func (h *Controller) Detail(c echo.Context) error {
	p, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch propertysvc.Code(err) {
		case propertysvc.ErrInvalidID:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid property ID"})
		case propertysvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": err.Error()})
		default:
			h.Log.Error("property detail", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	fillPlaceholder(p)
	return c.JSON(http.StatusOK, p)
}

// POST /v1/properties  (landlord)
func (h *Controller) Create(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	if ut, _ := jwtx.UserTypeFromContext(c); ut != string(model.UserLandlord) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}

	var req CreatePropertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	p := &model.Property{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		Address:     req.Address,
		RoomType:    model.RoomType(req.RoomType),
		Amenities:   req.Amenities,
		Images:      req.Images,
		LandlordID:  uid,
		Available:   available,
		Coordinates: req.Coordinates,
		Nearby:      req.Nearby,
		Rules:       req.Rules,
	}
	if err := h.Svc.Create(c.Request().Context(), p); err != nil {
		switch propertysvc.Code(err) {
		case propertysvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		default:
			h.Log.Error("property create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, p)
}

// PATCH /v1/properties/:id  (owning landlord)
func (h *Controller) Update(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	id := c.Param("id")

	existing, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		switch propertysvc.Code(err) {
		case propertysvc.ErrInvalidID:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid property ID"})
		case propertysvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": err.Error()})
		default:
			h.Log.Error("property update lookup", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	if existing.LandlordID != uid {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}

	var req UpdatePropertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	u := model.PropertyUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
		Address:     req.Address,
		Amenities:   req.Amenities,
		Images:      req.Images,
		Available:   req.Available,
		Rules:       req.Rules,
	}
	if req.RoomType != nil {
		rt := model.RoomType(*req.RoomType)
		u.RoomType = &rt
	}

	p, err := h.Svc.Update(c.Request().Context(), id, u)
	if err != nil {
		switch propertysvc.Code(err) {
		case propertysvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		case propertysvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": err.Error()})
		default:
			h.Log.Error("property update", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, p)
}
