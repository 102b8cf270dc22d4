package models

// Shipper lead statuses
const (
	LeadStatusNew       = "New"
	LeadStatusMatched   = "Matched"
	LeadStatusConverted = "Converted"
	LeadStatusLost      = "Lost"
)

const LeadUrgencyMedium = "Medium"

// ShipperLead is an inbound inquiry from a company looking for 3PL services.
// Matched3PLs holds ThreePL ids in match order.
type ShipperLead struct {
	Base
	CompanyName      string   `json:"company_name" validate:"required"`
	ContactName      string   `json:"contact_name" validate:"required"`
	Email            string   `json:"email" validate:"required"`
	Phone            string   `json:"phone" validate:"required"`
	ProductType      string   `json:"product_type" validate:"required"`
	RegionsNeeded    []string `json:"regions_needed"`
	MonthlyShipments *int     `json:"monthly_shipments" validate:"required,gte=0"`
	Urgency          string   `json:"urgency" validate:"oneof=Low Medium High"`
	Matched3PLs      []string `json:"matched_3pls"`
	Status           string   `json:"status" validate:"oneof=New Matched Converted Lost"`
}

func (s *ShipperLead) ApplyDefaults() {
	if s.Urgency == "" {
		s.Urgency = LeadUrgencyMedium
	}
	if s.Status == "" {
		s.Status = LeadStatusNew
	}
	if s.RegionsNeeded == nil {
		s.RegionsNeeded = []string{}
	}
	if s.Matched3PLs == nil {
		s.Matched3PLs = []string{}
	}
}
