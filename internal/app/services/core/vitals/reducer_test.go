package vitals

import (
	"testing"

	"intake-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyUpdateVital(t *testing.T) {
	state := NewVitalsState()

	state = Apply(state, Action{Type: ActionUpdateVital, Field: "pulse", Value: "88"})
	assert.Equal(t, "88", state.Pulse)

	t.Run("unknown field leaves state untouched", func(t *testing.T) {
		unchanged := Apply(state, Action{Type: ActionUpdateVital, Field: "nope", Value: "1"})
		assert.Equal(t, state, unchanged)
	})
}

func TestApplyToggleRiskFlag(t *testing.T) {
	state := NewVitalsState()

	state = Apply(state, Action{Type: ActionToggleRiskFlag, Flag: "diabetes"})
	assert.True(t, state.RiskFlags.Diabetes)

	state = Apply(state, Action{Type: ActionToggleRiskFlag, Flag: "diabetes"})
	assert.False(t, state.RiskFlags.Diabetes)
}

func TestApplyCustomVitals(t *testing.T) {
	state := NewVitalsState()

	state = Apply(state, Action{Type: ActionAddCustomVital, Name: "Blood Sugar", Unit: "mg/dL"})
	assert.Len(t, state.CustomVitals, 1)
	assert.NotEmpty(t, state.CustomVitals[0].ID)
	assert.Equal(t, "Blood Sugar", state.CustomVitals[0].Name)
	assert.Equal(t, "", state.CustomVitals[0].Value)

	id := state.CustomVitals[0].ID

	state = Apply(state, Action{Type: ActionUpdateCustomVital, ID: id, Field: "value", Value: "110"})
	assert.Equal(t, "110", state.CustomVitals[0].Value)

	t.Run("set upserts by id", func(t *testing.T) {
		updated := Apply(state, Action{Type: ActionSetCustomVital, ID: id, Name: "Fasting Sugar", Unit: "mg/dL", Value: "98"})
		assert.Len(t, updated.CustomVitals, 1)
		assert.Equal(t, "Fasting Sugar", updated.CustomVitals[0].Name)
		assert.Equal(t, "98", updated.CustomVitals[0].Value)

		appended := Apply(updated, Action{Type: ActionSetCustomVital, ID: "other", Name: "Girth", Unit: "cm", Value: "90"})
		assert.Len(t, appended.CustomVitals, 2)
	})

	state = Apply(state, Action{Type: ActionRemoveCustomVital, ID: id})
	assert.Empty(t, state.CustomVitals)
}

func TestApplyReset(t *testing.T) {
	state := NewVitalsState()
	state = Apply(state, Action{Type: ActionUpdateVital, Field: "weight", Value: "70"})
	state = Apply(state, Action{Type: ActionToggleRiskFlag, Flag: "kidney"})

	state = Apply(state, Action{Type: ActionResetVitals})
	assert.Equal(t, NewVitalsState(), state)
}

func TestApplyUnknownAction(t *testing.T) {
	state := Apply(NewVitalsState(), Action{Type: ActionUpdateVital, Field: "height", Value: "160"})
	assert.Equal(t, state, Apply(state, Action{Type: "NOT_AN_ACTION"}))
}

func TestApplyVisibility(t *testing.T) {
	state := models.VitalsState{
		Weight:      "70",
		BPSystolic:  "120",
		BPDiastolic: "80",
		MAP:         "93",
		GCSE:        "4",
		GCSV:        "5",
		GCSM:        "6",
		CustomVitals: []models.CustomVital{
			{ID: "cv1", Name: "Blood Sugar", Value: "110"},
		},
	}

	t.Run("disabled sections are blanked", func(t *testing.T) {
		result := ApplyVisibility(state, map[string]bool{"bp": false, "gcs": false, "custom": false})
		assert.Equal(t, "", result.BPSystolic)
		assert.Equal(t, "", result.BPDiastolic)
		assert.Equal(t, "", result.MAP)
		assert.Equal(t, "", result.GCSE)
		assert.Empty(t, result.CustomVitals)
		assert.Equal(t, "70", result.Weight)
	})

	t.Run("absent keys stay visible", func(t *testing.T) {
		result := ApplyVisibility(state, map[string]bool{})
		assert.Equal(t, state, result)
	})
}
