package dto

import (
	"github.com/lib/pq"

	m "ikk_backend/internals/features/ikk/agency/model"
)

// Create
type CreateAgencyRequest struct {
	AgencyName      string   `json:"agency_name" validate:"required,min=3,max=255"`
	AgencyCategory  string   `json:"agency_category" validate:"omitempty,oneof=kementerian lembaga pemda"`
	AgencyCodePanrb *string  `json:"agency_code_panrb" validate:"omitempty,max=50"`
	AgencySectors   []string `json:"agency_sectors" validate:"omitempty,dive,min=2"`
}

func (r CreateAgencyRequest) ToModel() *m.AgencyModel {
	return &m.AgencyModel{
		AgencyName:      r.AgencyName,
		AgencyCategory:  r.AgencyCategory,
		AgencyCodePanrb: r.AgencyCodePanrb,
		AgencySectors:   pq.StringArray(r.AgencySectors),
	}
}

// Update (partial)
type UpdateAgencyRequest struct {
	AgencyName      *string  `json:"agency_name" validate:"omitempty,min=3,max=255"`
	AgencyCategory  *string  `json:"agency_category" validate:"omitempty,oneof=kementerian lembaga pemda"`
	AgencyCodePanrb *string  `json:"agency_code_panrb" validate:"omitempty,max=50"`
	AgencySectors   []string `json:"agency_sectors" validate:"omitempty,dive,min=2"`
}

// Terapkan perubahan ke model existing
func (r UpdateAgencyRequest) ApplyTo(mo *m.AgencyModel) {
	if r.AgencyName != nil {
		mo.AgencyName = *r.AgencyName
	}
	if r.AgencyCategory != nil {
		mo.AgencyCategory = *r.AgencyCategory
	}
	if r.AgencyCodePanrb != nil {
		mo.AgencyCodePanrb = r.AgencyCodePanrb
	}
	if r.AgencySectors != nil {
		mo.AgencySectors = pq.StringArray(r.AgencySectors)
	}
}
