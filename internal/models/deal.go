package models

// Deal stages
const (
	DealStageNew           = "New"
	DealStageDiscovery     = "Discovery"
	DealStageProposal      = "Proposal"
	DealStageInNegotiation = "In Negotiation"
	DealStageWon           = "Won"
	DealStageLost          = "Lost"
)

// Deal is a CRM opportunity with a ThreePL
type Deal struct {
	Base
	ThreePLID         string     `json:"threepl_id" validate:"required"`
	DealName          string     `json:"deal_name" validate:"required"`
	Stage             string     `json:"stage" validate:"oneof=New Discovery Proposal 'In Negotiation' Won Lost"`
	Value             *float64   `json:"value"`
	ExpectedCloseDate *Timestamp `json:"expected_close_date"`
	Notes             string     `json:"notes"`
	RepOwner          string     `json:"rep_owner"`
}

func (d *Deal) ApplyDefaults() {
	if d.Stage == "" {
		d.Stage = DealStageNew
	}
}

// IsOpen reports whether the deal has not been closed as Won or Lost
func (d *Deal) IsOpen() bool {
	return d.Stage != DealStageWon && d.Stage != DealStageLost
}
