package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uybor/uybor-api/internal/core/ports"
)

const activityFeedLimit = 50

// ActivityHandler serves the recent catalog write trail.
type ActivityHandler struct {
	repo ports.ActivityRepository
}

func NewActivityHandler(repo ports.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{repo: repo}
}

// List handles GET /activity.
//
// @Summary      Recent catalog activity
// @Tags         activity
// @Produce      json
// @Success      200  {array}   domain.ActivityEntry
// @Failure      500  {object}  map[string]string
// @Router       /activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	entries, err := h.repo.ListRecent(c.Request().Context(), activityFeedLimit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
