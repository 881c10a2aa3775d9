package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// AgencyModel merepresentasikan tabel agencies — instansi pemerintah pemilik kebijakan.
type AgencyModel struct {
	// default diisi BeforeCreate supaya tidak bergantung fungsi khusus Postgres
	AgencyID uuid.UUID `gorm:"column:agency_id;type:uuid;primaryKey" json:"agency_id"`

	AgencyName      string  `gorm:"column:agency_name;type:varchar(255);not null" json:"agency_name"`
	AgencyCategory  string  `gorm:"column:agency_category;type:varchar(100)" json:"agency_category"` // kementerian, lembaga, pemda
	AgencyCodePanrb *string `gorm:"column:agency_code_panrb;type:varchar(50);unique" json:"agency_code_panrb,omitempty"`

	// Sektor kebijakan yang dibina instansi (dipakai filter dashboard)
	AgencySectors pq.StringArray `gorm:"column:agency_sectors;type:text[]" json:"agency_sectors,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (AgencyModel) TableName() string {
	return "agencies"
}

func (a *AgencyModel) BeforeCreate(tx *gorm.DB) error {
	if a.AgencyID == uuid.Nil {
		a.AgencyID = uuid.New()
	}
	return nil
}
