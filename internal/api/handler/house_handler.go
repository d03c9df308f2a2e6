package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uybor/uybor-api/internal/api/metrics"
	"github.com/uybor/uybor-api/internal/core/domain"
	"github.com/uybor/uybor-api/internal/core/ports"
)

// HouseHandler handles HTTP requests for the listings catalog.
type HouseHandler struct {
	service ports.HouseService
}

func NewHouseHandler(service ports.HouseService) *HouseHandler {
	return &HouseHandler{service: service}
}

// List handles GET /houses.
//
// The response is a bare JSON array, not an envelope; existing clients
// depend on that asymmetry. With no filter (or status=all) every
// listing comes back, soft-deleted ones included.
//
// @Summary      List houses
// @Tags         houses
// @Produce      json
// @Param        status  query     string  false  "Filter by status (all disables the filter)"  Enums(all, gold, blocked, deleted)
// @Success      200     {array}   domain.House
// @Failure      500     {object}  map[string]string
// @Router       /houses [get]
func (h *HouseHandler) List(c echo.Context) error {
	houses, err := h.service.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, houses)
}

// Create handles POST /houses.
//
// @Summary      Create a new house listing
// @Tags         houses
// @Accept       json
// @Produce      json
// @Param        body  body      createHouseRequest  true  "Listing fields"
// @Success      201   {object}  createHouseResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /houses [post]
func (h *HouseHandler) Create(c echo.Context) error {
	var req createHouseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	house, err := h.service.Create(c.Request().Context(), ports.CreateHouseInput{
		Image:    req.Image,
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Currency: req.Currency,
		Rooms:    req.Rooms,
		Year:     req.Year,
		Area:     req.Area,
		AreaUnit: req.AreaUnit,
		Status:   req.Status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) || errors.Is(err, domain.ErrInvalidField) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
		}
		return err
	}

	metrics.HousesCreatedTotal.WithLabelValues(house.Category).Inc()
	return c.JSON(http.StatusCreated, createHouseResponse{
		Message: "house created",
		House:   house,
	})
}
