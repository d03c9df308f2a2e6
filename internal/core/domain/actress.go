package domain

import "time"

// Actress is an entry in the performer catalog. Structurally a sibling
// of House: create, validate, persist, list newest-first.
type Actress struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	FullName        string    `json:"fullName" bson:"full_name"`
	BirthDate       time.Time `json:"birthDate" bson:"birth_date"`
	Nationality     string    `json:"nationality" bson:"nationality"`
	ExperienceYears int       `json:"experienceYears" bson:"experience_years"`
	MainGenre       string    `json:"mainGenre" bson:"main_genre"`
	AwardsCount     int       `json:"awardsCount" bson:"awards_count"`
	Agency          string    `json:"agency,omitempty" bson:"agency,omitempty"`
	Languages       []string  `json:"languages,omitempty" bson:"languages,omitempty"`
	SalaryPerMovie  float64   `json:"salaryPerMovie,omitempty" bson:"salary_per_movie,omitempty"`
	LastProject     string    `json:"lastProject,omitempty" bson:"last_project,omitempty"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}
