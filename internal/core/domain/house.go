package domain

import "time"

// HouseStatus is the visibility tab a listing belongs to. Soft deletion
// happens by status, never by removing the document.
type HouseStatus string

const (
	HouseStatusAll     HouseStatus = "all"
	HouseStatusGold    HouseStatus = "gold"
	HouseStatusBlocked HouseStatus = "blocked"
	HouseStatusDeleted HouseStatus = "deleted"
)

// StatusFilterAll is the sentinel query value that disables status
// filtering. Listing with it (or with no filter at all) returns every
// status, soft-deleted included.
const StatusFilterAll = "all"

// Currency codes accepted on a listing.
const (
	CurrencyUSD = "USD"
	CurrencyUZS = "UZS"
	CurrencyEUR = "EUR"
)

// Area units accepted on a listing.
const (
	AreaUnitKv = "kv"
	AreaUnitM2 = "m2"
)

// Defaults applied when optional fields are omitted on create.
const (
	DefaultCategory = "Apartment"
	DefaultCurrency = CurrencyUSD
	DefaultAreaUnit = AreaUnitKv
)

// Bounds enforced before persistence.
const (
	HouseNameMaxLen     = 120
	HouseCategoryMaxLen = 60
	HouseYearMin        = 1800
	HouseYearMax        = 2100
)

// House is a real-estate listing.
type House struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	Image     string      `json:"image" bson:"image"`
	Name      string      `json:"name" bson:"name"`
	Category  string      `json:"category" bson:"category"`
	Price     float64     `json:"price" bson:"price"`
	Currency  string      `json:"currency" bson:"currency"`
	Rooms     int         `json:"rooms" bson:"rooms"`
	Year      int         `json:"year" bson:"year"`
	Area      float64     `json:"area" bson:"area"`
	AreaUnit  string      `json:"areaUnit" bson:"area_unit"`
	Status    HouseStatus `json:"status" bson:"status"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
}

// ValidHouseStatus reports whether s is one of the known status tabs.
func ValidHouseStatus(s HouseStatus) bool {
	switch s {
	case HouseStatusAll, HouseStatusGold, HouseStatusBlocked, HouseStatusDeleted:
		return true
	}
	return false
}
