package models

// DashboardStats holds the summary counts shown on the dashboard
type DashboardStats struct {
	Total3PLs       int `json:"total_3pls"`
	TotalWarehouses int `json:"total_warehouses"`
	ActiveDeals     int `json:"active_deals"`
	ExpiringLeases  int `json:"expiring_leases"`
	NewLeads        int `json:"new_leads"`
}
