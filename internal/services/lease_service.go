package services

import (
	"context"
	"time"

	"growe/internal/models"
)

// LeaseService adds the expiration query on top of the lease records
type LeaseService interface {
	RecordService[*models.Lease]
	ListExpiring(ctx context.Context, now time.Time) ([]*models.Lease, error)
}

type leaseService struct {
	RecordService[*models.Lease]
}

func NewLeaseService(records RecordService[*models.Lease]) LeaseService {
	return &leaseService{RecordService: records}
}

// ListExpiring returns Active leases whose end date falls on or before now + 180 days.
// Leases already Expired or Renewed are never included.
func (s *leaseService) ListExpiring(ctx context.Context, now time.Time) ([]*models.Lease, error) {
	leases, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterExpiring(leases, now), nil
}

// FilterExpiring applies the expiration window to an already loaded lease list
func FilterExpiring(leases []*models.Lease, now time.Time) []*models.Lease {
	expiring := make([]*models.Lease, 0)
	for _, lease := range leases {
		if lease.ExpiresBy(now) {
			expiring = append(expiring, lease)
		}
	}
	return expiring
}
