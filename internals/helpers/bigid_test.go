package helper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBigID_MarshalSelaluString(t *testing.T) {
	b, err := json.Marshal(BigID(9007199254740993)) // di atas MAX_SAFE_INTEGER JS
	require.NoError(t, err)
	assert.Equal(t, `"9007199254740993"`, string(b))
}

func TestBigID_UnmarshalAngkaDanString(t *testing.T) {
	var fromNumber, fromString BigID
	require.NoError(t, json.Unmarshal([]byte(`42`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`"42"`), &fromString))
	assert.Equal(t, BigID(42), fromNumber)
	assert.Equal(t, fromNumber, fromString)

	var fromNull BigID = 7
	require.NoError(t, json.Unmarshal([]byte(`null`), &fromNull))
	assert.Equal(t, BigID(0), fromNull)

	var bad BigID
	assert.Error(t, json.Unmarshal([]byte(`"bukan-angka"`), &bad))
}

func TestParseBigID_TolakNolDanNegatif(t *testing.T) {
	_, err := ParseBigID("0")
	assert.Error(t, err)
	_, err = ParseBigID("-5")
	assert.Error(t, err)

	id, err := ParseBigID(" 15 ")
	require.NoError(t, err)
	assert.Equal(t, BigID(15), id)
}
