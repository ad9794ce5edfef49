package vitals

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
)

// thresholds is (critLow, warnLow, warnHigh, critHigh) per reading. A nil
// bound means that side has no limit.
type thresholds struct {
	CritLow  *float64
	WarnLow  *float64
	WarnHigh *float64
	CritHigh *float64
}

func f(v float64) *float64 { return &v }

var vitalThresholds = map[string]thresholds{
	"weight":          {f(1), f(1), f(351), f(351)},
	"height":          {f(30), f(30), f(251), f(251)},
	"pulse":           {f(40), f(100), f(120), f(120)},
	"temperature":     {f(95), f(100.5), f(102), f(102)},
	"bpSystolic":      {f(90), f(140), f(160), f(160)},
	"bpDiastolic":     {nil, f(90), f(100), f(100)},
	"spo2":            {f(90), f(90), f(94), f(101)},
	"respiratoryRate": {f(8), f(22), f(30), f(30)},
}

// CategorizeVital labels a reading against its thresholds. Unparseable input
// gets no label at all.
func CategorizeVital(field, value string) string {
	t, ok := vitalThresholds[field]
	if !ok {
		return ""
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return ""
	}

	if (t.CritLow != nil && v < *t.CritLow) || (t.CritHigh != nil && v >= *t.CritHigh) {
		return constvars.VitalCategoryCritical
	}
	if t.WarnLow != nil && v >= *t.WarnLow && t.WarnHigh != nil && v < *t.WarnHigh {
		return constvars.VitalCategoryWarning
	}
	return constvars.VitalCategoryNormal
}

// CategorizeCustomVital bands a custom reading against its definition bounds.
// Without at least one bound, or with an unparseable value, there is no band.
func CategorizeCustomVital(value string, minVal, maxVal *float64) string {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return ""
	}
	if minVal == nil && maxVal == nil {
		return ""
	}
	if (minVal != nil && v < *minVal) || (maxVal != nil && v > *maxVal) {
		return constvars.VitalCategoryWarning
	}
	return constvars.VitalCategoryNormal
}

// CalculateBMI returns the rounded BMI for weight in kg and height in cm, or
// "" unless both are positive numbers.
func CalculateBMI(weight, height string) string {
	w, errW := strconv.ParseFloat(weight, 64)
	h, errH := strconv.ParseFloat(height, 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return ""
	}
	meters := h / 100
	return fmt.Sprintf("%.1f", w/(meters*meters))
}

func BMIBand(bmi string) string {
	v, err := strconv.ParseFloat(bmi, 64)
	if err != nil {
		return ""
	}
	switch {
	case v < 18.5:
		return constvars.BMIBandUnderweight
	case v < 25:
		return constvars.BMIBandNormal
	case v < 30:
		return constvars.BMIBandOverweight
	default:
		return constvars.BMIBandObese
	}
}

// CalculateMAP returns the mean arterial pressure, rounded to a whole number.
// Both pressures must be positive and systolic must exceed diastolic.
func CalculateMAP(systolic, diastolic string) string {
	sys, errS := strconv.ParseFloat(systolic, 64)
	dia, errD := strconv.ParseFloat(diastolic, 64)
	if errS != nil || errD != nil || sys <= 0 || dia <= 0 || sys <= dia {
		return ""
	}
	// Half values round up, not to even, so 92.5 becomes 93.
	return fmt.Sprintf("%.0f", math.Round(dia+(sys-dia)/3))
}

// CalculateAge derives whole years from a yyyy-mm-dd date of birth. Results
// outside 0..120 are treated as data-entry mistakes and dropped.
func CalculateAge(dob string, now time.Time) string {
	birth, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return ""
	}
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	if years < 0 || years > 120 {
		return ""
	}
	return strconv.Itoa(years)
}

// GCSTotal sums the three Glasgow Coma Scale components when all of them are
// filled in.
func GCSTotal(e, v, m string) string {
	eye, errE := strconv.Atoi(e)
	verbal, errV := strconv.Atoi(v)
	motor, errM := strconv.Atoi(m)
	if errE != nil || errV != nil || errM != nil {
		return ""
	}
	return strconv.Itoa(eye + verbal + motor)
}

// Recalculate refreshes the derived readings from their inputs.
func Recalculate(state models.VitalsState) models.VitalsState {
	state.BMI = CalculateBMI(state.Weight, state.Height)
	state.MAP = CalculateMAP(state.BPSystolic, state.BPDiastolic)
	return state
}

// Advisories returns non-blocking alerts derived from a vitals snapshot.
func Advisories(state models.VitalsState) []string {
	var advisories []string
	if spo2, err := strconv.ParseFloat(state.SpO2, 64); err == nil && spo2 < 92 {
		advisories = append(advisories, "SpO2 below 92%, supplemental oxygen may be required")
	}
	return advisories
}
