package routers

import (
	"fmt"
	"time"

	"intake-service/internal/app/config"
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/services/core/customfields"
	"intake-service/internal/app/services/core/fieldconfig"
	"intake-service/internal/app/services/core/intake"
	"intake-service/internal/app/services/core/packages"
	"intake-service/internal/app/services/core/records"
	"intake-service/internal/app/services/core/registration"
	"intake-service/internal/app/services/core/summary"
	"intake-service/internal/app/services/core/vitals"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	registrationController *registration.RegistrationController,
	vitalsController *vitals.VitalsController,
	intakeController *intake.IntakeController,
	summaryController *summary.SummaryController,
	packageController *packages.PackageController,
	customFieldController *customfields.CustomFieldController,
	fieldConfigController *fieldconfig.FieldConfigController,
	recordsController *records.RecordsController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := internalConfig.App.EndpointPrefix
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/patients", func(r chi.Router) {
				attachRegistrationRoutes(r, registrationController)
				attachPatientDataRoutes(r, vitalsController, intakeController, summaryController)
			})

			r.Route("/doctors", func(r chi.Router) {
				r.Get("/", registrationController.ListDoctors)
			})

			r.Route("/packages", func(r chi.Router) {
				attachPackageRoutes(r, packageController)
			})

			r.Route("/custom-fields/definitions", func(r chi.Router) {
				attachCustomFieldRoutes(r, customFieldController)
			})

			r.Route("/vitals/definitions", func(r chi.Router) {
				attachVitalDefinitionRoutes(r, vitalsController)
			})

			r.Route("/config", func(r chi.Router) {
				attachFieldConfigRoutes(r, fieldConfigController)
			})

			r.Route("/records", func(r chi.Router) {
				r.Post("/extract", recordsController.ExtractRecords)
			})
		})
	})
}
