package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ikk_backend/internals/features/ikk/policy/workflow"
	helper "ikk_backend/internals/helpers"
)

// PolicyModel merepresentasikan tabel policies — satu kebijakan yang dinilai IKK.
type PolicyModel struct {
	PolicyID helper.BigID `gorm:"column:policy_id;primaryKey;autoIncrement" json:"policy_id"`

	PolicyName          string     `gorm:"column:policy_name;type:varchar(255);not null" json:"policy_name"`
	PolicyNameDetail    *string    `gorm:"column:policy_name_detail;type:text" json:"policy_name_detail,omitempty"`
	PolicySector        string     `gorm:"column:policy_sector;type:varchar(100);not null" json:"policy_sector"`
	PolicyEffectiveDate *time.Time `gorm:"column:policy_effective_date" json:"policy_effective_date,omitempty"`

	// Link Google Drive / bukti dukung (upload file di luar scope sistem ini)
	PolicyFileURL *string `gorm:"column:policy_file_url;type:text" json:"policy_file_url,omitempty"`

	// Detail program: dasar_hukum, program, file_url
	PolicyProgramDetail datatypes.JSONMap `gorm:"column:policy_program_detail;type:jsonb" json:"policy_program_detail,omitempty"`

	// Kepemilikan
	PolicyCreatedBy     uuid.UUID  `gorm:"column:policy_created_by;type:uuid;not null;index" json:"policy_created_by"`
	PolicyAgencyID      *uuid.UUID `gorm:"column:policy_agency_id;type:uuid;index" json:"policy_agency_id,omitempty"`
	PolicyAgencyIDPanrb *uuid.UUID `gorm:"column:policy_agency_id_panrb;type:uuid" json:"policy_agency_id_panrb,omitempty"`

	// State workflow — hanya diubah lewat tabel transisi di package workflow
	PolicyStatus  string `gorm:"column:policy_status;type:varchar(30);not null;default:'BELUM_TERVERIFIKASI';index" json:"policy_status"`
	PolicyProcess string `gorm:"column:policy_process;type:varchar(20);not null;default:'DIAJUKAN';index" json:"policy_process"`

	// Field penugasan & audit
	PolicyEnumeratorID            *uuid.UUID `gorm:"column:policy_enumerator_id;type:uuid" json:"policy_enumerator_id,omitempty"`
	PolicyProcessedByEnumeratorID *uuid.UUID `gorm:"column:policy_processed_by_enumerator_id;type:uuid" json:"policy_processed_by_enumerator_id,omitempty"`
	PolicyAssignedByAdminID       *uuid.UUID `gorm:"column:policy_assigned_by_admin_id;type:uuid" json:"policy_assigned_by_admin_id,omitempty"`
	PolicyValidatedBy             *uuid.UUID `gorm:"column:policy_validated_by;type:uuid" json:"policy_validated_by,omitempty"`

	PolicySentToKIAt  *time.Time `gorm:"column:policy_sent_to_ki_at" json:"policy_sent_to_ki_at,omitempty"`
	PolicyValidatedAt *time.Time `gorm:"column:policy_validated_at" json:"policy_validated_at,omitempty"`
	PolicyVerifiedAt  *time.Time `gorm:"column:policy_verified_at" json:"policy_verified_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (PolicyModel) TableName() string {
	return "policies"
}

func (p *PolicyModel) Status() workflow.PolicyStatus {
	return workflow.PolicyStatus(p.PolicyStatus)
}

func (p *PolicyModel) Process() workflow.PolicyProcess {
	return workflow.PolicyProcess(p.PolicyProcess)
}
