package model

import (
	"time"

	"github.com/google/uuid"

	helper "ikk_backend/internals/helpers"
)

// KIScoreModel merepresentasikan tabel ikk_ki_scores — jawaban penilaian per
// dimensi dari sisi instansi (diisi enumerator, divalidasi Koordinator Instansi).
// Satu row per kebijakan; primary key = id kebijakan.
type KIScoreModel struct {
	KIScorePolicyID helper.BigID `gorm:"column:ikk_ki_score_policy_id;primaryKey" json:"ikk_ki_score_policy_id"`

	// Dimensi A — perencanaan kebijakan
	KIScoreA1 *int16 `gorm:"column:ikk_ki_score_a1" json:"a1,omitempty"`
	KIScoreA2 *int16 `gorm:"column:ikk_ki_score_a2" json:"a2,omitempty"`
	KIScoreA3 *int16 `gorm:"column:ikk_ki_score_a3" json:"a3,omitempty"`

	// Dimensi B — implementasi kebijakan
	KIScoreB1 *int16 `gorm:"column:ikk_ki_score_b1" json:"b1,omitempty"`
	KIScoreB2 *int16 `gorm:"column:ikk_ki_score_b2" json:"b2,omitempty"`
	KIScoreB3 *int16 `gorm:"column:ikk_ki_score_b3" json:"b3,omitempty"`

	// Dimensi C — evaluasi kebijakan
	KIScoreC1 *int16 `gorm:"column:ikk_ki_score_c1" json:"c1,omitempty"`
	KIScoreC2 *int16 `gorm:"column:ikk_ki_score_c2" json:"c2,omitempty"`

	// Dimensi D — transparansi & partisipasi
	KIScoreD1 *int16 `gorm:"column:ikk_ki_score_d1" json:"d1,omitempty"`
	KIScoreD2 *int16 `gorm:"column:ikk_ki_score_d2" json:"d2,omitempty"`

	// Unsur pengungkit: keterlibatan JF Analis Kebijakan
	KIScoreJF *bool `gorm:"column:ikk_ki_score_jf" json:"jf,omitempty"`

	// Justifikasi free-text per dimensi
	KIScoreJustifA *string `gorm:"column:ikk_ki_score_justif_a;type:text" json:"justif_a,omitempty"`
	KIScoreJustifB *string `gorm:"column:ikk_ki_score_justif_b;type:text" json:"justif_b,omitempty"`
	KIScoreJustifC *string `gorm:"column:ikk_ki_score_justif_c;type:text" json:"justif_c,omitempty"`
	KIScoreJustifD *string `gorm:"column:ikk_ki_score_justif_d;type:text" json:"justif_d,omitempty"`

	// Agregat — dihitung ulang aplikasi setiap save
	KIScoreATotal   float64 `gorm:"column:ikk_ki_score_a_total" json:"a_total_score"`
	KIScoreBTotal   float64 `gorm:"column:ikk_ki_score_b_total" json:"b_total_score"`
	KIScoreCTotal   float64 `gorm:"column:ikk_ki_score_c_total" json:"c_total_score"`
	KIScoreDTotal   float64 `gorm:"column:ikk_ki_score_d_total" json:"d_total_score"`
	KIScoreIKKTotal float64 `gorm:"column:ikk_ki_score_ikk_total" json:"ikk_total_score"`

	KIScoreFilledBy *uuid.UUID `gorm:"column:ikk_ki_score_filled_by;type:uuid" json:"filled_by,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (KIScoreModel) TableName() string {
	return "ikk_ki_scores"
}
