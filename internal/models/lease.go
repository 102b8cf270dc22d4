package models

import "time"

// Lease statuses
const (
	LeaseStatusActive   = "Active"
	LeaseStatusExpiring = "Expiring"
	LeaseStatusExpired  = "Expired"
	LeaseStatusRenewed  = "Renewed"
)

// LeaseExpirationWindow is the look-ahead horizon for leases needing renewal attention
const LeaseExpirationWindow = 180 * 24 * time.Hour

type Lease struct {
	Base
	WarehouseID   string     `json:"warehouse_id" validate:"required"`
	ThreePLID     string     `json:"threepl_id" validate:"required"`
	StartDate     *Timestamp `json:"start_date" validate:"required"`
	EndDate       *Timestamp `json:"end_date" validate:"required"`
	RenewalDate   *Timestamp `json:"renewal_date"`
	SquareFootage *int       `json:"square_footage" validate:"required,gte=0"`
	Landlord      string     `json:"landlord" validate:"required"`
	MonthlyRent   *float64   `json:"monthly_rent" validate:"required,gte=0"`
	Status        string     `json:"status" validate:"oneof=Active Expiring Expired Renewed"`
	Notes         string     `json:"notes"`
}

func (l *Lease) ApplyDefaults() {
	if l.Status == "" {
		l.Status = LeaseStatusActive
	}
}

// ExpiresBy reports whether the lease is Active and ends on or before
// now plus the expiration window.
func (l *Lease) ExpiresBy(now time.Time) bool {
	if l.Status != LeaseStatusActive || l.EndDate == nil {
		return false
	}
	return !l.EndDate.After(now.Add(LeaseExpirationWindow))
}
