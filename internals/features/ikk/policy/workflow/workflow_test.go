package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardSemuaEventTerdaftar(t *testing.T) {
	events := []Event{
		EventAssignEnumerator, EventSendToKI, EventForwardToKU,
		EventMarkVerification, EventApprove, EventReject, EventValidateKU,
	}
	for _, ev := range events {
		tr := Guard(ev)
		assert.Equal(t, ev, tr.Event)
		assert.True(t, len(tr.FromStatus) > 0 || len(tr.FromProcess) > 0,
			"event %s harus punya precondition", ev)
	}
}

func TestGuardEventTidakDikenalPanic(t *testing.T) {
	assert.Panics(t, func() { Guard(Event("NGACO")) })
}

func TestAlurNormalSampaiDisetujui(t *testing.T) {
	status := StatusBelumTerverifikasi
	process := ProsesDiajukan

	// KI memilih enumerator
	tr := Guard(EventAssignEnumerator)
	require.True(t, tr.AllowedFrom(status, process))
	status, process = tr.Apply(status, process)
	assert.Equal(t, StatusBelumTerverifikasi, status) // status tidak berubah
	assert.Equal(t, ProsesProses, process)

	// Enumerator kirim ke KI
	tr = Guard(EventSendToKI)
	require.True(t, tr.AllowedFrom(status, process))
	status, process = tr.Apply(status, process)
	assert.Equal(t, StatusMenungguValidasiKI, status)
	assert.Equal(t, ProsesProses, process)

	// KI teruskan ke KU
	tr = Guard(EventForwardToKU)
	require.True(t, tr.AllowedFrom(status, process))
	status, process = tr.Apply(status, process)
	assert.Equal(t, StatusMenungguValidasiKU, status)
	assert.Equal(t, ProsesSelesai, process)

	// KU tandai batch verifikasi
	tr = Guard(EventMarkVerification)
	require.True(t, tr.AllowedFrom(status, process))
	status, process = tr.Apply(status, process)
	assert.Equal(t, StatusSedangVerifikasi, status)
	assert.Equal(t, ProsesSelesai, process) // process tidak disentuh

	// Verifikator setuju
	tr = Guard(EventApprove)
	require.True(t, tr.AllowedFrom(status, process))
	status, process = tr.Apply(status, process)
	assert.Equal(t, StatusSelesaiVerifikasi, status)
	assert.Equal(t, ProsesDisetujui, process)

	// Tanda tangan akhir KU
	tr = Guard(EventValidateKU)
	require.True(t, tr.AllowedFrom(status, process))
	status, _ = tr.Apply(status, process)
	assert.Equal(t, StatusSelesaiValidasiKU, status)
}

func TestSetiapEventIdempoten(t *testing.T) {
	// Setiap event harus boleh dipanggil ulang dari state hasilnya sendiri
	// dan menghasilkan state yang sama.
	cases := []struct {
		ev      Event
		status  PolicyStatus
		process PolicyProcess
	}{
		{EventAssignEnumerator, StatusBelumTerverifikasi, ProsesDiajukan},
		{EventSendToKI, StatusBelumTerverifikasi, ProsesProses},
		{EventForwardToKU, StatusMenungguValidasiKI, ProsesProses},
		{EventMarkVerification, StatusMenungguValidasiKU, ProsesSelesai},
		{EventApprove, StatusSedangVerifikasi, ProsesSelesai},
		{EventReject, StatusSedangVerifikasi, ProsesSelesai},
		{EventValidateKU, StatusMenungguValidasiKU, ProsesSelesai},
	}
	for _, tc := range cases {
		tr := Guard(tc.ev)
		require.True(t, tr.AllowedFrom(tc.status, tc.process), "event %s dari state awal", tc.ev)

		s1, p1 := tr.Apply(tc.status, tc.process)
		require.True(t, tr.AllowedFrom(s1, p1), "event %s harus idempoten dari state hasilnya", tc.ev)
		s2, p2 := tr.Apply(s1, p1)
		assert.Equal(t, s1, s2, "event %s", tc.ev)
		assert.Equal(t, p1, p2, "event %s", tc.ev)
	}
}

func TestLoncatanIlegalDitolak(t *testing.T) {
	// Approve langsung dari kebijakan baru diajukan → tidak boleh
	assert.False(t, Guard(EventApprove).AllowedFrom(StatusBelumTerverifikasi, ProsesDiajukan))
	// Kirim ke KI setelah selesai verifikasi → tidak boleh
	assert.False(t, Guard(EventSendToKI).AllowedFrom(StatusSelesaiVerifikasi, ProsesDisetujui))
	// Assign enumerator setelah disetujui → tidak boleh
	assert.False(t, Guard(EventAssignEnumerator).AllowedFrom(StatusSelesaiVerifikasi, ProsesDisetujui))
	// Tandai verifikasi sebelum sampai ke KU → tidak boleh
	assert.False(t, Guard(EventMarkVerification).AllowedFrom(StatusMenungguValidasiKI, ProsesProses))
}

func TestRejectLaluApproveTetapBoleh(t *testing.T) {
	// Keduanya satu keluarga terminal SELESAI_VERIFIKASI; verifikator boleh
	// mengoreksi keputusan selama status masih di tahap verifikasi.
	tr := Guard(EventReject)
	s, p := tr.Apply(StatusSedangVerifikasi, ProsesSelesai)
	assert.Equal(t, StatusSelesaiVerifikasi, s)
	assert.Equal(t, ProsesDitolak, p)

	tr = Guard(EventApprove)
	require.True(t, tr.AllowedFrom(s, p))
	s, p = tr.Apply(s, p)
	assert.Equal(t, StatusSelesaiVerifikasi, s)
	assert.Equal(t, ProsesDisetujui, p)
}

func TestScopeHelpers(t *testing.T) {
	tr := Guard(EventApprove)
	assert.ElementsMatch(t,
		[]string{"SEDANG_VERIFIKASI", "SELESAI_VERIFIKASI"},
		tr.StatusScope())

	tr = Guard(EventAssignEnumerator)
	assert.Empty(t, tr.StatusScope())
	assert.ElementsMatch(t, []string{"DIAJUKAN", "PROSES"}, tr.ProcessScope())
}

func TestValidasiNilaiMentah(t *testing.T) {
	assert.True(t, ValidStatus("BELUM_TERVERIFIKASI"))
	assert.True(t, ValidStatus("SELESAI_VALIDASI_KU"))
	assert.False(t, ValidStatus("selesai_validasi_ku"))
	assert.False(t, ValidStatus(""))

	assert.True(t, ValidProcess("DIAJUKAN"))
	assert.True(t, ValidProcess("DITOLAK"))
	assert.False(t, ValidProcess("PENDING"))
}
