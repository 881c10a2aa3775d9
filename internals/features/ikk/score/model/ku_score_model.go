package model

import (
	"time"

	"github.com/google/uuid"

	helper "ikk_backend/internals/helpers"
)

// KUScoreModel merepresentasikan tabel ikk_ku_scores — penilaian versi
// Koordinator Utama/Nasional atas kebijakan yang sama. Strukturnya paralel
// dengan KIScoreModel supaya kedua sisi bisa dibandingkan per dimensi.
type KUScoreModel struct {
	KUScorePolicyID helper.BigID `gorm:"column:ikk_ku_score_policy_id;primaryKey" json:"ikk_ku_score_policy_id"`

	KUScoreA1 *int16 `gorm:"column:ikk_ku_score_a1" json:"a1,omitempty"`
	KUScoreA2 *int16 `gorm:"column:ikk_ku_score_a2" json:"a2,omitempty"`
	KUScoreA3 *int16 `gorm:"column:ikk_ku_score_a3" json:"a3,omitempty"`

	KUScoreB1 *int16 `gorm:"column:ikk_ku_score_b1" json:"b1,omitempty"`
	KUScoreB2 *int16 `gorm:"column:ikk_ku_score_b2" json:"b2,omitempty"`
	KUScoreB3 *int16 `gorm:"column:ikk_ku_score_b3" json:"b3,omitempty"`

	KUScoreC1 *int16 `gorm:"column:ikk_ku_score_c1" json:"c1,omitempty"`
	KUScoreC2 *int16 `gorm:"column:ikk_ku_score_c2" json:"c2,omitempty"`

	KUScoreD1 *int16 `gorm:"column:ikk_ku_score_d1" json:"d1,omitempty"`
	KUScoreD2 *int16 `gorm:"column:ikk_ku_score_d2" json:"d2,omitempty"`

	KUScoreJF *bool `gorm:"column:ikk_ku_score_jf" json:"jf,omitempty"`

	KUScoreJustifA *string `gorm:"column:ikk_ku_score_justif_a;type:text" json:"justif_a,omitempty"`
	KUScoreJustifB *string `gorm:"column:ikk_ku_score_justif_b;type:text" json:"justif_b,omitempty"`
	KUScoreJustifC *string `gorm:"column:ikk_ku_score_justif_c;type:text" json:"justif_c,omitempty"`
	KUScoreJustifD *string `gorm:"column:ikk_ku_score_justif_d;type:text" json:"justif_d,omitempty"`

	KUScoreATotal   float64 `gorm:"column:ikk_ku_score_a_total" json:"a_total_score"`
	KUScoreBTotal   float64 `gorm:"column:ikk_ku_score_b_total" json:"b_total_score"`
	KUScoreCTotal   float64 `gorm:"column:ikk_ku_score_c_total" json:"c_total_score"`
	KUScoreDTotal   float64 `gorm:"column:ikk_ku_score_d_total" json:"d_total_score"`
	KUScoreIKKTotal float64 `gorm:"column:ikk_ku_score_ikk_total" json:"ikk_total_score"`

	KUScoreFilledBy *uuid.UUID `gorm:"column:ikk_ku_score_filled_by;type:uuid" json:"filled_by,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (KUScoreModel) TableName() string {
	return "ikk_ku_scores"
}
