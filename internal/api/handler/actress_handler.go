package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uybor/uybor-api/internal/api/metrics"
	"github.com/uybor/uybor-api/internal/core/domain"
	"github.com/uybor/uybor-api/internal/core/ports"
)

// ActressHandler handles HTTP requests for the performer catalog.
type ActressHandler struct {
	service ports.ActressService
}

func NewActressHandler(service ports.ActressService) *ActressHandler {
	return &ActressHandler{service: service}
}

// List handles GET /actresses. Bare array, newest first.
//
// @Summary      List actresses
// @Tags         actresses
// @Produce      json
// @Success      200  {array}   domain.Actress
// @Failure      500  {object}  map[string]string
// @Router       /actresses [get]
func (h *ActressHandler) List(c echo.Context) error {
	actresses, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, actresses)
}

// Create handles POST /actresses.
//
// @Summary      Create a new actress entry
// @Tags         actresses
// @Accept       json
// @Produce      json
// @Param        body  body      createActressRequest  true  "Profile fields"
// @Success      201   {object}  createActressResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /actresses [post]
func (h *ActressHandler) Create(c echo.Context) error {
	var req createActressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	actress, err := h.service.Create(c.Request().Context(), ports.CreateActressInput{
		FullName:        req.FullName,
		BirthDate:       req.BirthDate,
		Nationality:     req.Nationality,
		ExperienceYears: req.ExperienceYears,
		MainGenre:       req.MainGenre,
		AwardsCount:     req.AwardsCount,
		Agency:          req.Agency,
		Languages:       req.Languages,
		SalaryPerMovie:  req.SalaryPerMovie,
		LastProject:     req.LastProject,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
		}
		return err
	}

	metrics.ActressesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createActressResponse{
		Message: "actress created",
		Actress: actress,
	})
}
