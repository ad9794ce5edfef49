package intake

import "intake-service/internal/app/models"

type ActionType string

const (
	ActionUpdateComplaints        ActionType = "UPDATE_COMPLAINTS"
	ActionUpdateChronicConditions ActionType = "UPDATE_CHRONIC_CONDITIONS"
	ActionUpdateAllergies         ActionType = "UPDATE_ALLERGIES"
	ActionUpdatePastHistory       ActionType = "UPDATE_PAST_HISTORY"
	ActionResetAll                ActionType = "RESET_ALL"
)

// Action carries a wholesale replacement for one intake section.
type Action struct {
	Type              ActionType
	Complaints        []models.Complaint
	ChronicConditions []models.ChronicCondition
	Allergies         models.Allergies
	PastHistory       models.PastHistory
}

func NewIntakeState() models.IntakeState {
	return models.IntakeState{
		Complaints:        []models.Complaint{},
		ChronicConditions: []models.ChronicCondition{},
		Allergies:         models.Allergies{Types: []string{}},
		PastHistory: models.PastHistory{
			Illnesses:          []string{},
			Surgeries:          []models.SurgeryEntry{},
			Hospitalizations:   []models.HospitalizationEntry{},
			CurrentMedications: []models.Medication{},
		},
	}
}

// Apply replaces the targeted section; unknown actions return the state
// unchanged.
func Apply(state models.IntakeState, action Action) models.IntakeState {
	switch action.Type {
	case ActionUpdateComplaints:
		state.Complaints = action.Complaints
		return state
	case ActionUpdateChronicConditions:
		state.ChronicConditions = action.ChronicConditions
		return state
	case ActionUpdateAllergies:
		state.Allergies = action.Allergies
		return state
	case ActionUpdatePastHistory:
		state.PastHistory = action.PastHistory
		return state
	case ActionResetAll:
		return NewIntakeState()
	default:
		return state
	}
}
