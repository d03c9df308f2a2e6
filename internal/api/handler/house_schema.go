package handler

import "github.com/uybor/uybor-api/internal/core/domain"

// messageResponse is the standard envelope returned on errors and
// plain acknowledgements.
type messageResponse struct {
	Message string `json:"message"`
}

// createHouseRequest is the boundary schema for POST /houses. The
// required tags fail on zero values for the numeric fields; that
// matches the product's long-standing behavior where a zero price,
// room count or area is treated as absent.
type createHouseRequest struct {
	Image    string  `json:"image"    validate:"required"`
	Name     string  `json:"name"     validate:"required,max=120"`
	Category string  `json:"category" validate:"omitempty,max=60"`
	Price    float64 `json:"price"    validate:"required,gte=0"`
	Currency string  `json:"currency" validate:"omitempty,oneof=USD UZS EUR"`
	Rooms    int     `json:"rooms"    validate:"required,gte=0"`
	Year     int     `json:"year"     validate:"required,gte=1800,lte=2100"`
	Area     float64 `json:"area"     validate:"required,gte=0"`
	AreaUnit string  `json:"areaUnit" validate:"omitempty,oneof=kv m2"`
	Status   string  `json:"status"   validate:"omitempty,oneof=all gold blocked deleted"`
}

type createHouseResponse struct {
	Message string        `json:"message"`
	House   *domain.House `json:"house"`
}
