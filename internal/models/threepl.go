package models

// ThreePL statuses
const (
	ThreePLStatusNew     = "New"
	ThreePLStatusEngaged = "Engaged"
	ThreePLStatusMatched = "Matched"
	ThreePLStatusDormant = "Dormant"
	ThreePLStatusExpired = "Expired"
)

// ThreePL is a third-party logistics partner record
type ThreePL struct {
	Base
	CompanyName       string   `json:"company_name" validate:"required"`
	PrimaryContact    string   `json:"primary_contact" validate:"required"`
	Email             string   `json:"email" validate:"required"`
	Phone             string   `json:"phone" validate:"required"`
	Services          []string `json:"services"`
	RegionsCovered    []string `json:"regions_covered"`
	Status            string   `json:"status" validate:"oneof=New Engaged Matched Dormant Expired"`
	Notes             string   `json:"notes"`
	RepOwner          string   `json:"rep_owner"`
	NumberOfLocations int      `json:"number_of_locations" validate:"gte=0"`
}

func (t *ThreePL) ApplyDefaults() {
	if t.Status == "" {
		t.Status = ThreePLStatusNew
	}
	if t.Services == nil {
		t.Services = []string{}
	}
	if t.RegionsCovered == nil {
		t.RegionsCovered = []string{}
	}
}
