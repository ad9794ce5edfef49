package routers

import (
	"intake-service/internal/app/services/core/intake"
	"intake-service/internal/app/services/core/registration"
	"intake-service/internal/app/services/core/summary"
	"intake-service/internal/app/services/core/vitals"

	"github.com/go-chi/chi/v5"
)

func attachRegistrationRoutes(router chi.Router, registrationController *registration.RegistrationController) {
	router.Post("/", registrationController.Register)
	router.Post("/check", registrationController.CheckPatient)
	router.Post("/draft", registrationController.SaveDraft)
}

func attachPatientDataRoutes(
	router chi.Router,
	vitalsController *vitals.VitalsController,
	intakeController *intake.IntakeController,
	summaryController *summary.SummaryController,
) {
	router.Post("/{patientID}/vitals", vitalsController.SaveVitals)
	router.Post("/{patientID}/intake", intakeController.SubmitIntake)
	router.Post("/{patientID}/summary", summaryController.GenerateSummary)
}
