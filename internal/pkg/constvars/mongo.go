package constvars

const (
	MongoCollectionPatients         = "patients"
	MongoCollectionDoctors          = "doctors"
	MongoCollectionPatientConfig    = "patientConfig"
	MongoCollectionPackages         = "packages"
	MongoCollectionVitalDefinitions = "vitalDefinitions"
	MongoCollectionVitals           = "vitals"
	MongoCollectionIntakes          = "intakes"

	// Single shared document carrying the process-wide custom-field
	// definitions.
	MongoDocPersistedCustomLabels = "persistedCustomLabels"
)
