package main

import (
	"growe/internal/analytics"
	"growe/internal/caching"
	"growe/internal/common"
	"growe/internal/config"
	"growe/internal/handlers"
	"growe/internal/middleware"
	"growe/internal/models"
	"growe/internal/repositories"
	"growe/internal/services"
)

func newAuthService(cfg *config.Config, userRepo repositories.UserRepository, cacheSvc caching.CacheService) services.AuthService {
	return services.NewAuthService(userRepo, cacheSvc, cfg.Auth.JWTSecret, services.WithTokenTTL(cfg.TokenTTL()))
}

// buildAPI wires repositories, services and handlers over one database
func buildAPI(cfg *config.Config, db repositories.Database, cacheSvc caching.CacheService, checks map[string]handlers.Pinger) (*handlers.API, *middleware.RBACMiddleware) {
	validator := common.NewValidator()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	threePLRepo := repositories.NewDocumentRepository[*models.ThreePL](db, repositories.ThreePLsCollection)
	warehouseRepo := repositories.NewDocumentRepository[*models.Warehouse](db, repositories.WarehousesCollection)
	leaseRepo := repositories.NewDocumentRepository[*models.Lease](db, repositories.LeasesCollection)
	dealRepo := repositories.NewDocumentRepository[*models.Deal](db, repositories.DealsCollection)
	leadRepo := repositories.NewDocumentRepository[*models.ShipperLead](db, repositories.ShipperLeadsCollection)

	// Services
	authService := newAuthService(cfg, userRepo, cacheSvc)
	leaseService := services.NewLeaseService(services.NewRecordService(leaseRepo, validator))
	dashboard := analytics.NewDashboardService(threePLRepo, warehouseRepo, dealRepo, leaseRepo, leadRepo)

	api := &handlers.API{
		Auth:       handlers.NewAuthHandlers(authService),
		ThreePLs:   handlers.NewRecordHandlers(services.NewRecordService(threePLRepo, validator), "3PL", func() *models.ThreePL { return &models.ThreePL{} }),
		Warehouses: handlers.NewRecordHandlers(services.NewRecordService(warehouseRepo, validator), "Warehouse", func() *models.Warehouse { return &models.Warehouse{} }),
		Leases:     handlers.NewLeaseHandlers(leaseService),
		Deals:      handlers.NewRecordHandlers(services.NewRecordService(dealRepo, validator), "Deal", func() *models.Deal { return &models.Deal{} }),
		Leads: handlers.NewRecordHandlers(services.NewRecordService(leadRepo, validator), "Shipper lead", func() *models.ShipperLead { return &models.ShipperLead{} }).
			OnCreate(func(*models.ShipperLead) { middleware.RecordLeadSubmitted() }),
		Dashboard:   handlers.NewDashboardHandlers(dashboard),
		Health:      handlers.NewHealthHandlers(checks),
		LeadLimiter: middleware.RateLimit(cacheSvc, "shipper_leads", cfg.Leads.RateLimit, cfg.LeadWindow()),
	}

	return api, middleware.NewRBACMiddleware(authService)
}
