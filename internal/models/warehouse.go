package models

// Warehouse is a physical site operated by a ThreePL. ThreePLID is not
// checked against existing ThreePL records.
type Warehouse struct {
	Base
	ThreePLID        string   `json:"threepl_id" validate:"required"`
	Name             string   `json:"name" validate:"required"`
	Address          string   `json:"address" validate:"required"`
	City             string   `json:"city" validate:"required"`
	State            string   `json:"state" validate:"required"`
	ZipCode          string   `json:"zip_code" validate:"required"`
	Lat              *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng              *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
	GroweRepresented *bool    `json:"growe_represented"`
}

func (w *Warehouse) ApplyDefaults() {
	if w.GroweRepresented == nil {
		represented := true
		w.GroweRepresented = &represented
	}
}
