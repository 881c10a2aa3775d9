package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "ikk_backend/internals/features/ikk/policy/model"
	helper "ikk_backend/internals/helpers"
)

/* =============== REQUESTS =============== */

// Create — body POST /api/policies/create (nama field mengikuti kontrak lama)
type CreatePolicyRequest struct {
	NamaKebijakan       string            `json:"nama_kebijakan" validate:"required,min=3,max=255"`
	DetailNamaKebijakan *string           `json:"detail_nama_kebijakan" validate:"omitempty"`
	SektorKebijakan     string            `json:"sektor_kebijakan" validate:"required,min=2,max=100"`
	TanggalBerlaku      *time.Time        `json:"tanggal_berlaku" validate:"omitempty"`
	LinkDrive           *string           `json:"link_drive" validate:"omitempty,url"`
	CreatedBy           *uuid.UUID        `json:"created_by" validate:"omitempty"`
	AgencyID            *uuid.UUID        `json:"agency_id" validate:"omitempty"`
	AgencyIDPanrb       *uuid.UUID        `json:"agency_id_panrb" validate:"omitempty"`
	ProgramDetail       datatypes.JSONMap `json:"program_detail" validate:"omitempty"` // dasar_hukum, program, file_url
}

func (r CreatePolicyRequest) ToModel(createdBy uuid.UUID) *m.PolicyModel {
	return &m.PolicyModel{
		PolicyName:          r.NamaKebijakan,
		PolicyNameDetail:    r.DetailNamaKebijakan,
		PolicySector:        r.SektorKebijakan,
		PolicyEffectiveDate: r.TanggalBerlaku,
		PolicyFileURL:       r.LinkDrive,
		PolicyProgramDetail: r.ProgramDetail,
		PolicyCreatedBy:     createdBy,
		PolicyAgencyID:      r.AgencyID,
		PolicyAgencyIDPanrb: r.AgencyIDPanrb,
	}
}

// Assign enumerator — body POST /api/policies/pilih-enumerator
type AssignEnumeratorRequest struct {
	PolicyID  helper.BigID `json:"policyId" validate:"required"`
	AnalystID uuid.UUID    `json:"analystId" validate:"required"`
}

// Transisi single-record yang cuma butuh id (approve/reject/send_to_ki)
type PolicyIDRequest struct {
	ID helper.BigID `json:"id" validate:"required"`
}

// Bulk mark verifikasi — body POST /api/policies/update-status
type BulkVerificationRequest struct {
	PolicyIDs []helper.BigID `json:"policyIds" validate:"required,min=1,dive,required"`
	UserID    *uuid.UUID     `json:"userId" validate:"omitempty"`
}

/* =============== RESPONSES =============== */

type PolicyResponse struct {
	PolicyID helper.BigID `json:"policy_id"`

	PolicyName          string            `json:"policy_name"`
	PolicyNameDetail    *string           `json:"policy_name_detail,omitempty"`
	PolicySector        string            `json:"policy_sector"`
	PolicyEffectiveDate *time.Time        `json:"policy_effective_date,omitempty"`
	PolicyFileURL       *string           `json:"policy_file_url,omitempty"`
	PolicyProgramDetail datatypes.JSONMap `json:"policy_program_detail,omitempty"`

	PolicyCreatedBy     uuid.UUID  `json:"policy_created_by"`
	PolicyAgencyID      *uuid.UUID `json:"policy_agency_id,omitempty"`
	PolicyAgencyIDPanrb *uuid.UUID `json:"policy_agency_id_panrb,omitempty"`

	PolicyStatus  string `json:"policy_status"`
	PolicyProcess string `json:"policy_process"`

	PolicyEnumeratorID            *uuid.UUID `json:"policy_enumerator_id,omitempty"`
	PolicyProcessedByEnumeratorID *uuid.UUID `json:"policy_processed_by_enumerator_id,omitempty"`
	PolicyAssignedByAdminID       *uuid.UUID `json:"policy_assigned_by_admin_id,omitempty"`
	PolicyValidatedBy             *uuid.UUID `json:"policy_validated_by,omitempty"`

	PolicySentToKIAt  *time.Time `json:"policy_sent_to_ki_at,omitempty"`
	PolicyValidatedAt *time.Time `json:"policy_validated_at,omitempty"`
	PolicyVerifiedAt  *time.Time `json:"policy_verified_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(p m.PolicyModel) PolicyResponse {
	return PolicyResponse{
		PolicyID:                      p.PolicyID,
		PolicyName:                    p.PolicyName,
		PolicyNameDetail:              p.PolicyNameDetail,
		PolicySector:                  p.PolicySector,
		PolicyEffectiveDate:           p.PolicyEffectiveDate,
		PolicyFileURL:                 p.PolicyFileURL,
		PolicyProgramDetail:           p.PolicyProgramDetail,
		PolicyCreatedBy:               p.PolicyCreatedBy,
		PolicyAgencyID:                p.PolicyAgencyID,
		PolicyAgencyIDPanrb:           p.PolicyAgencyIDPanrb,
		PolicyStatus:                  p.PolicyStatus,
		PolicyProcess:                 p.PolicyProcess,
		PolicyEnumeratorID:            p.PolicyEnumeratorID,
		PolicyProcessedByEnumeratorID: p.PolicyProcessedByEnumeratorID,
		PolicyAssignedByAdminID:       p.PolicyAssignedByAdminID,
		PolicyValidatedBy:             p.PolicyValidatedBy,
		PolicySentToKIAt:              p.PolicySentToKIAt,
		PolicyValidatedAt:             p.PolicyValidatedAt,
		PolicyVerifiedAt:              p.PolicyVerifiedAt,
		CreatedAt:                     p.CreatedAt,
		UpdatedAt:                     p.UpdatedAt,
	}
}

func FromModels(rows []m.PolicyModel) []PolicyResponse {
	out := make([]PolicyResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
