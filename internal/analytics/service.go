package analytics

import (
	"context"
	"log"
	"time"

	"growe/internal/models"
	"growe/internal/repositories"
	"growe/internal/services"
)

// DashboardService computes the dashboard summary counts. Nothing is cached;
// every call reads the current collections.
type DashboardService struct {
	threePLRepo   repositories.DocumentRepository[*models.ThreePL]
	warehouseRepo repositories.DocumentRepository[*models.Warehouse]
	dealRepo      repositories.DocumentRepository[*models.Deal]
	leaseRepo     repositories.DocumentRepository[*models.Lease]
	leadRepo      repositories.DocumentRepository[*models.ShipperLead]
}

func NewDashboardService(
	threePLRepo repositories.DocumentRepository[*models.ThreePL],
	warehouseRepo repositories.DocumentRepository[*models.Warehouse],
	dealRepo repositories.DocumentRepository[*models.Deal],
	leaseRepo repositories.DocumentRepository[*models.Lease],
	leadRepo repositories.DocumentRepository[*models.ShipperLead],
) *DashboardService {
	return &DashboardService{
		threePLRepo:   threePLRepo,
		warehouseRepo: warehouseRepo,
		dealRepo:      dealRepo,
		leaseRepo:     leaseRepo,
		leadRepo:      leadRepo,
	}
}

func (a *DashboardService) Stats(ctx context.Context, now time.Time) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	var err error

	if stats.Total3PLs, err = a.threePLRepo.Count(ctx); err != nil {
		log.Printf("Failed to count 3PLs for dashboard: %v", err)
		return nil, err
	}

	if stats.TotalWarehouses, err = a.warehouseRepo.Count(ctx); err != nil {
		log.Printf("Failed to count warehouses for dashboard: %v", err)
		return nil, err
	}

	deals, err := a.dealRepo.List(ctx)
	if err != nil {
		log.Printf("Failed to get deals for dashboard: %v", err)
		return nil, err
	}
	for _, deal := range deals {
		if deal.IsOpen() {
			stats.ActiveDeals++
		}
	}

	leases, err := a.leaseRepo.List(ctx)
	if err != nil {
		log.Printf("Failed to get leases for dashboard: %v", err)
		return nil, err
	}
	stats.ExpiringLeases = len(services.FilterExpiring(leases, now))

	leads, err := a.leadRepo.List(ctx)
	if err != nil {
		log.Printf("Failed to get shipper leads for dashboard: %v", err)
		return nil, err
	}
	for _, lead := range leads {
		if lead.Status == models.LeadStatusNew {
			stats.NewLeads++
		}
	}

	return stats, nil
}
