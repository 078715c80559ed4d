package storage

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/primeitclub/the-newbies/app/echoServer/jwtx"
	storagesvc "github.com/primeitclub/the-newbies/service/storage"
)

type Controller struct {
	Svc storagesvc.Service
	Log *slog.Logger
}

// POST /v1/storage/:bucket  (multipart field "file")
func (h *Controller) Upload(c echo.Context) error {
	if _, err := jwtx.UserIDFromContext(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "file field required"})
	}
	src, err := fh.Open()
	if err != nil {
		h.Log.Error("upload open", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	defer src.Close()

	f, err := h.Svc.Upload(c.Request().Context(), c.Param("bucket"), fh.Filename, src)
	if err != nil {
		switch storagesvc.Code(err) {
		case storagesvc.ErrInvalidBucket:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown bucket"})
		default:
			h.Log.Error("upload", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"file": f, "url": h.Svc.URL(f)})
}

// DELETE /v1/storage/:bucket/:fileId
func (h *Controller) Delete(c echo.Context) error {
	if _, err := jwtx.UserIDFromContext(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	err := h.Svc.Delete(c.Request().Context(), c.Param("bucket"), c.Param("fileId"))
	if err != nil {
		switch storagesvc.Code(err) {
		case storagesvc.ErrInvalidBucket:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown bucket"})
		case storagesvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "file not found"})
		default:
			h.Log.Error("file delete", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}
