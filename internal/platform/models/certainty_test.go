package models_test

import (
	"encoding/json"
	"testing"

	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitCertaintyOrder(t *testing.T) {
	ordered := []models.Certainty{
		models.CertaintyNotMatch,
		models.CertaintyAutoLowConfidence,
		models.CertaintyAutoLowConfidenceSkipped,
		models.CertaintyAutoHighConfidence,
		models.CertaintyManualInput,
	}

	for ix := 1; ix < len(ordered); ix++ {
		assert.Truef(t, ordered[ix-1].Less(ordered[ix]), "%s should rank below %s", ordered[ix-1], ordered[ix])
		assert.Falsef(t, ordered[ix].Less(ordered[ix-1]), "%s shouldn't rank below %s", ordered[ix], ordered[ix-1])
		assert.Equal(t, ix, ordered[ix].Rank(), "should have correct rank")
	}
}

func TestUnitParseCertainty(t *testing.T) {
	tests := map[string]struct {
		name    string
		want    models.Certainty
		wantErr error
	}{
		"not match":      {name: "not_match", want: models.CertaintyNotMatch},
		"low":            {name: "auto_low_confidence", want: models.CertaintyAutoLowConfidence},
		"skipped":        {name: "auto_low_confidence_skipped", want: models.CertaintyAutoLowConfidenceSkipped},
		"high":           {name: "auto_high_confidence", want: models.CertaintyAutoHighConfidence},
		"manual":         {name: "manual_input", want: models.CertaintyManualInput},
		"unknown error":  {name: "maybe", wantErr: platform.ErrValidation},
		"wrong case err": {name: "Manual_Input", wantErr: platform.ErrValidation},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := models.ParseCertainty(tt.name)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			if tt.wantErr == nil {
				assert.Equal(t, tt.want, got, "should parse correct certainty")
				assert.Equal(t, tt.name, got.String(), "should format back to the same name")
			}
		})
	}
}

func TestUnitCertaintyIsMatched(t *testing.T) {
	assert.False(t, models.CertaintyNotMatch.IsMatched())
	assert.False(t, models.CertaintyAutoLowConfidence.IsMatched())
	assert.True(t, models.CertaintyAutoLowConfidenceSkipped.IsMatched())
	assert.True(t, models.CertaintyAutoHighConfidence.IsMatched())
	assert.True(t, models.CertaintyManualInput.IsMatched())

	assert.Equal(t, []models.Certainty{
		models.CertaintyAutoLowConfidenceSkipped,
		models.CertaintyAutoHighConfidence,
		models.CertaintyManualInput,
	}, models.MatchedCertainties(), "should list matched tiers lowest first")
}

func TestUnitCertaintyJSON(t *testing.T) {
	body, err := json.Marshal(struct {
		Certainty models.Certainty `json:"certainty"`
	}{Certainty: models.CertaintyManualInput})
	require.NoError(t, err)
	assert.JSONEq(t, `{"certainty":"manual_input"}`, string(body))

	var decoded struct {
		Certainty models.Certainty `json:"certainty"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"certainty":"auto_high_confidence"}`), &decoded))
	assert.Equal(t, models.CertaintyAutoHighConfidence, decoded.Certainty)

	_, err = json.Marshal(models.Certainty(42))
	assert.Error(t, err, "should refuse to marshal undefined tier")
}
