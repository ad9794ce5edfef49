package intake

// ComplaintMaster maps a presenting complaint to its specialty and marks the
// ones that escalate to a red flag when severe.
type ComplaintMaster struct {
	Label     string
	RedFlag   bool
	Specialty string
}

var ComplaintMasters = []ComplaintMaster{
	{Label: "Chest Pain", RedFlag: true, Specialty: "Cardiology"},
	{Label: "Shortness of Breath", RedFlag: true, Specialty: "Cardiology"},
	{Label: "Severe Headache", RedFlag: true, Specialty: "Neurology"},
	{Label: "High Fever", RedFlag: true, Specialty: "General Medicine"},
	{Label: "Abdominal Pain", RedFlag: false, Specialty: "Gastroenterology"},
	{Label: "Fever", RedFlag: false, Specialty: "General Medicine"},
	{Label: "Cough", RedFlag: false, Specialty: "Pulmonology"},
	{Label: "Headache", RedFlag: false, Specialty: "Neurology"},
	{Label: "Diarrhea", RedFlag: false, Specialty: "Gastroenterology"},
	{Label: "Back Pain", RedFlag: false, Specialty: "Orthopedics"},
}

var ChronicConditionMasters = []string{
	"Diabetes Mellitus",
	"Hypertension",
	"Asthma",
	"COPD",
	"Chronic Kidney Disease",
	"Coronary Artery Disease",
	"Hyperthyroidism",
	"Hypothyroidism",
	"Rheumatoid Arthritis",
	"Osteoarthritis",
}

var MedicationMasters = []string{
	"Metformin",
	"Insulin",
	"Amlodipine",
	"Lisinopril",
	"Atorvastatin",
	"Aspirin",
	"Levothyroxine",
	"Salbutamol",
	"Prednisolone",
	"Paracetamol",
}

var MedicationFrequencies = []string{"OD", "BD", "TDS", "QHS", "QID", "PRN", "Weekly", "Monthly"}

var MedicationRoutes = []string{"Oral", "SC", "IV", "IM", "Inhaled", "Topical", "Sublingual"}

var ChronicDurationPresets = []string{"Unknown", "< 1 year", "1-5 years", "5-10 years", "> 10 years"}

var ComplianceOptions = []string{"Taking", "Missed", "Ran out", "Unknown"}

var ComplaintDurationUnits = []string{"h", "d", "w", "mo", "yr"}
