package dto

import (
	"github.com/google/uuid"

	m "ikk_backend/internals/features/ikk/score/model"
	helper "ikk_backend/internals/helpers"
)

// SaveScoreRequest adalah payload upsert jawaban penilaian. Semua field nilai
// pointer: field yang tidak dikirim TIDAK menyentuh nilai lama (partial update).
type SaveScoreRequest struct {
	PolicyID helper.BigID `json:"policy_id" validate:"required"`

	A1 *int16 `json:"a1" validate:"omitempty,gte=0,lte=4"`
	A2 *int16 `json:"a2" validate:"omitempty,gte=0,lte=4"`
	A3 *int16 `json:"a3" validate:"omitempty,gte=0,lte=4"`
	B1 *int16 `json:"b1" validate:"omitempty,gte=0,lte=4"`
	B2 *int16 `json:"b2" validate:"omitempty,gte=0,lte=4"`
	B3 *int16 `json:"b3" validate:"omitempty,gte=0,lte=4"`
	C1 *int16 `json:"c1" validate:"omitempty,gte=0,lte=4"`
	C2 *int16 `json:"c2" validate:"omitempty,gte=0,lte=4"`
	D1 *int16 `json:"d1" validate:"omitempty,gte=0,lte=4"`
	D2 *int16 `json:"d2" validate:"omitempty,gte=0,lte=4"`

	JF *bool `json:"jf" validate:"omitempty"`

	JustifA *string `json:"justif_a" validate:"omitempty"`
	JustifB *string `json:"justif_b" validate:"omitempty"`
	JustifC *string `json:"justif_c" validate:"omitempty"`
	JustifD *string `json:"justif_d" validate:"omitempty"`
}

// ApplyToKI menerapkan field non-nil ke row KI existing, lalu hitung ulang total.
func (r SaveScoreRequest) ApplyToKI(row *m.KIScoreModel, actorID uuid.UUID) {
	if r.A1 != nil {
		row.KIScoreA1 = r.A1
	}
	if r.A2 != nil {
		row.KIScoreA2 = r.A2
	}
	if r.A3 != nil {
		row.KIScoreA3 = r.A3
	}
	if r.B1 != nil {
		row.KIScoreB1 = r.B1
	}
	if r.B2 != nil {
		row.KIScoreB2 = r.B2
	}
	if r.B3 != nil {
		row.KIScoreB3 = r.B3
	}
	if r.C1 != nil {
		row.KIScoreC1 = r.C1
	}
	if r.C2 != nil {
		row.KIScoreC2 = r.C2
	}
	if r.D1 != nil {
		row.KIScoreD1 = r.D1
	}
	if r.D2 != nil {
		row.KIScoreD2 = r.D2
	}
	if r.JF != nil {
		row.KIScoreJF = r.JF
	}
	if r.JustifA != nil {
		row.KIScoreJustifA = r.JustifA
	}
	if r.JustifB != nil {
		row.KIScoreJustifB = r.JustifB
	}
	if r.JustifC != nil {
		row.KIScoreJustifC = r.JustifC
	}
	if r.JustifD != nil {
		row.KIScoreJustifD = r.JustifD
	}
	if actorID != uuid.Nil {
		row.KIScoreFilledBy = &actorID
	}

	row.KIScoreATotal = sumDim(row.KIScoreA1, row.KIScoreA2, row.KIScoreA3)
	row.KIScoreBTotal = sumDim(row.KIScoreB1, row.KIScoreB2, row.KIScoreB3)
	row.KIScoreCTotal = sumDim(row.KIScoreC1, row.KIScoreC2)
	row.KIScoreDTotal = sumDim(row.KIScoreD1, row.KIScoreD2)
	row.KIScoreIKKTotal = row.KIScoreATotal + row.KIScoreBTotal + row.KIScoreCTotal + row.KIScoreDTotal
}

// ApplyToKU menerapkan field non-nil ke row KU existing, lalu hitung ulang total.
func (r SaveScoreRequest) ApplyToKU(row *m.KUScoreModel, actorID uuid.UUID) {
	if r.A1 != nil {
		row.KUScoreA1 = r.A1
	}
	if r.A2 != nil {
		row.KUScoreA2 = r.A2
	}
	if r.A3 != nil {
		row.KUScoreA3 = r.A3
	}
	if r.B1 != nil {
		row.KUScoreB1 = r.B1
	}
	if r.B2 != nil {
		row.KUScoreB2 = r.B2
	}
	if r.B3 != nil {
		row.KUScoreB3 = r.B3
	}
	if r.C1 != nil {
		row.KUScoreC1 = r.C1
	}
	if r.C2 != nil {
		row.KUScoreC2 = r.C2
	}
	if r.D1 != nil {
		row.KUScoreD1 = r.D1
	}
	if r.D2 != nil {
		row.KUScoreD2 = r.D2
	}
	if r.JF != nil {
		row.KUScoreJF = r.JF
	}
	if r.JustifA != nil {
		row.KUScoreJustifA = r.JustifA
	}
	if r.JustifB != nil {
		row.KUScoreJustifB = r.JustifB
	}
	if r.JustifC != nil {
		row.KUScoreJustifC = r.JustifC
	}
	if r.JustifD != nil {
		row.KUScoreJustifD = r.JustifD
	}
	if actorID != uuid.Nil {
		row.KUScoreFilledBy = &actorID
	}

	row.KUScoreATotal = sumDim(row.KUScoreA1, row.KUScoreA2, row.KUScoreA3)
	row.KUScoreBTotal = sumDim(row.KUScoreB1, row.KUScoreB2, row.KUScoreB3)
	row.KUScoreCTotal = sumDim(row.KUScoreC1, row.KUScoreC2)
	row.KUScoreDTotal = sumDim(row.KUScoreD1, row.KUScoreD2)
	row.KUScoreIKKTotal = row.KUScoreATotal + row.KUScoreBTotal + row.KUScoreCTotal + row.KUScoreDTotal
}

// sumDim menjumlahkan sub-skor satu dimensi; nilai yang belum diisi dianggap 0.
func sumDim(vals ...*int16) float64 {
	var total float64
	for _, v := range vals {
		if v != nil {
			total += float64(*v)
		}
	}
	return total
}
