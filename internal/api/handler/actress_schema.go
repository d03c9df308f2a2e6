package handler

import (
	"time"

	"github.com/uybor/uybor-api/internal/core/domain"
)

// createActressRequest is the boundary schema for POST /actresses.
// Five profile fields are required (zero counts as absent, same policy
// as houses); the rest are optional extras.
type createActressRequest struct {
	FullName        string    `json:"fullName"        validate:"required"`
	BirthDate       time.Time `json:"birthDate"       validate:"required"`
	Nationality     string    `json:"nationality"     validate:"required"`
	ExperienceYears int       `json:"experienceYears" validate:"required,gte=0"`
	MainGenre       string    `json:"mainGenre"       validate:"required"`
	AwardsCount     int       `json:"awardsCount"     validate:"omitempty,gte=0"`
	Agency          string    `json:"agency"`
	Languages       []string  `json:"languages"`
	SalaryPerMovie  float64   `json:"salaryPerMovie"  validate:"omitempty,gte=0"`
	LastProject     string    `json:"lastProject"`
}

type createActressResponse struct {
	Message string          `json:"message"`
	Actress *domain.Actress `json:"actress"`
}
