package routers

import (
	"intake-service/internal/app/services/core/customfields"
	"intake-service/internal/app/services/core/fieldconfig"
	"intake-service/internal/app/services/core/packages"
	"intake-service/internal/app/services/core/vitals"

	"github.com/go-chi/chi/v5"
)

func attachPackageRoutes(router chi.Router, packageController *packages.PackageController) {
	router.Get("/", packageController.ListPackages)
	router.Post("/", packageController.CreatePackage)
	router.Put("/{packageID}", packageController.UpdatePackage)
	router.Delete("/{packageID}", packageController.DeletePackage)
}

func attachCustomFieldRoutes(router chi.Router, customFieldController *customfields.CustomFieldController) {
	router.Get("/", customFieldController.ListDefinitions)
	router.Post("/", customFieldController.CreateDefinition)
	router.Delete("/{label}", customFieldController.RemoveDefinition)
}

func attachVitalDefinitionRoutes(router chi.Router, vitalsController *vitals.VitalsController) {
	router.Get("/", vitalsController.ListDefinitions)
	router.Post("/", vitalsController.CreateDefinition)
	router.Put("/{definitionID}", vitalsController.UpdateDefinition)
	router.Delete("/{definitionID}", vitalsController.RemoveDefinition)
}

func attachFieldConfigRoutes(router chi.Router, fieldConfigController *fieldconfig.FieldConfigController) {
	router.Get("/registration-fields", fieldConfigController.GetRegistrationConfig)
	router.Put("/registration-fields", fieldConfigController.UpdateRegistrationConfig)
	router.Get("/vitals", fieldConfigController.GetVitalsConfig)
	router.Put("/vitals", fieldConfigController.UpdateVitalsConfig)
}
