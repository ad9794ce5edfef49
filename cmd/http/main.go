package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"intake-service/internal/app/config"
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/delivery/http/routers"
	"intake-service/internal/app/drivers/database"
	"intake-service/internal/app/drivers/logger"
	"intake-service/internal/app/drivers/messaging"
	miniodriver "intake-service/internal/app/drivers/storage"
	"intake-service/internal/app/services/core/customfields"
	"intake-service/internal/app/services/core/fieldconfig"
	"intake-service/internal/app/services/core/intake"
	"intake-service/internal/app/services/core/packages"
	"intake-service/internal/app/services/core/records"
	"intake-service/internal/app/services/core/registration"
	"intake-service/internal/app/services/core/summary"
	"intake-service/internal/app/services/core/vitals"
	"intake-service/internal/app/services/shared/events"
	"intake-service/internal/app/services/shared/extractor"
	redisrepo "intake-service/internal/app/services/shared/redis"
	"intake-service/internal/app/services/shared/storage"
	"intake-service/internal/app/services/shared/summarizer"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapTheApp(&bootstrap); err != nil {
		logrus.Fatalf("Bootstrap failed: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Error closing application resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) error {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared infrastructure
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	minioClient := miniodriver.NewMinio(bootstrap.DriverConfig)
	objectStorage := storage.NewMinioStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName)
	textExtractor := extractor.NewTextExtractor()

	eventPublisher, err := events.NewPatientEventPublisher(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.RabbitMQ.PatientRegisteredQueue,
	)
	if err != nil {
		return err
	}

	eventWorker := events.NewPatientEventWorker(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.RabbitMQ.PatientRegisteredQueue,
	)
	if err := eventWorker.Start(); err != nil {
		return err
	}
	bootstrap.WorkerStop = eventWorker.Stop

	var clinicalSummarizer = summarizer.NewStubSummarizer()
	if bootstrap.InternalConfig.Summarizer.BaseUrl != "" {
		clinicalSummarizer = summarizer.NewHTTPSummarizer(bootstrap.InternalConfig)
	}

	// Middlewares
	requestMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Registration
	patientRepository := registration.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	doctorRepository := registration.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	customFieldRepository := customfields.NewCustomFieldMongoRepository(bootstrap.MongoDB, dbName)
	registrationUsecase := registration.NewRegistrationUsecase(
		bootstrap.Logger,
		patientRepository,
		doctorRepository,
		customFieldRepository,
		objectStorage,
		eventPublisher,
	)
	registrationController := registration.NewRegistrationController(bootstrap.Logger, registrationUsecase)

	// Vitals
	vitalsRepository := vitals.NewVitalsMongoRepository(bootstrap.MongoDB, dbName)
	vitalDefinitionRepository := vitals.NewVitalDefinitionMongoRepository(bootstrap.MongoDB, dbName)
	vitalsUsecase := vitals.NewVitalsUsecase(patientRepository, vitalsRepository, vitalDefinitionRepository, redisRepository)
	vitalsController := vitals.NewVitalsController(bootstrap.Logger, vitalsUsecase)

	// Intake
	intakeRepository := intake.NewIntakeMongoRepository(bootstrap.MongoDB, dbName)
	intakeUsecase := intake.NewIntakeUsecase(patientRepository, intakeRepository)
	intakeController := intake.NewIntakeController(bootstrap.Logger, intakeUsecase)

	// Summary
	summaryUsecase := summary.NewSummaryUsecase(patientRepository, intakeRepository, vitalsRepository, clinicalSummarizer)
	summaryController := summary.NewSummaryController(bootstrap.Logger, summaryUsecase)

	// Packages
	packageRepository := packages.NewPackageMongoRepository(bootstrap.MongoDB, dbName)
	packageUsecase := packages.NewPackageUsecase(packageRepository)
	packageController := packages.NewPackageController(bootstrap.Logger, packageUsecase)

	// Custom fields
	customFieldUsecase := customfields.NewCustomFieldUsecase(customFieldRepository)
	customFieldController := customfields.NewCustomFieldController(bootstrap.Logger, customFieldUsecase)

	// Field configuration
	fieldConfigUsecase := fieldconfig.NewFieldConfigUsecase(redisRepository, vitalDefinitionRepository)
	fieldConfigController := fieldconfig.NewFieldConfigController(bootstrap.Logger, fieldConfigUsecase)

	// Records
	recordsUsecase := records.NewRecordsUsecase(textExtractor, bootstrap.InternalConfig)
	recordsController := records.NewRecordsController(bootstrap.Logger, recordsUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		requestMiddlewares,
		registrationController,
		vitalsController,
		intakeController,
		summaryController,
		packageController,
		customFieldController,
		fieldConfigController,
		recordsController,
	)

	return nil
}
