package vitals

import (
	"testing"
	"time"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMI(t *testing.T) {
	t.Run("computes from weight and height", func(t *testing.T) {
		assert.Equal(t, "22.9", CalculateBMI("70", "175"))
	})

	t.Run("empty when either value is missing", func(t *testing.T) {
		assert.Equal(t, "", CalculateBMI("", "175"))
		assert.Equal(t, "", CalculateBMI("70", ""))
	})

	t.Run("empty when a value is not positive", func(t *testing.T) {
		assert.Equal(t, "", CalculateBMI("0", "175"))
		assert.Equal(t, "", CalculateBMI("70", "-5"))
	})
}

func TestBMIBand(t *testing.T) {
	assert.Equal(t, constvars.BMIBandUnderweight, BMIBand("18.4"))
	assert.Equal(t, constvars.BMIBandNormal, BMIBand("18.5"))
	assert.Equal(t, constvars.BMIBandNormal, BMIBand("24.9"))
	assert.Equal(t, constvars.BMIBandOverweight, BMIBand("25.0"))
	assert.Equal(t, constvars.BMIBandObese, BMIBand("30.0"))
	assert.Equal(t, "", BMIBand(""))
}

func TestCalculateMAP(t *testing.T) {
	t.Run("rounds to a whole number", func(t *testing.T) {
		assert.Equal(t, "93", CalculateMAP("120", "80"))
	})

	t.Run("half values round up", func(t *testing.T) {
		// 90.5 + (96.5-90.5)/3 = 92.5
		assert.Equal(t, "93", CalculateMAP("96.5", "90.5"))
	})

	t.Run("empty when systolic does not exceed diastolic", func(t *testing.T) {
		assert.Equal(t, "", CalculateMAP("80", "80"))
		assert.Equal(t, "", CalculateMAP("80", "120"))
	})

	t.Run("empty when either side is missing or not positive", func(t *testing.T) {
		assert.Equal(t, "", CalculateMAP("", "80"))
		assert.Equal(t, "", CalculateMAP("120", "0"))
	})
}

func TestCalculateAge(t *testing.T) {
	now := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	t.Run("counts completed years", func(t *testing.T) {
		assert.Equal(t, "36", CalculateAge("1990-05-10", now))
	})

	t.Run("decrements before the birthday", func(t *testing.T) {
		assert.Equal(t, "35", CalculateAge("1990-12-01", now))
	})

	t.Run("rejects out-of-range results", func(t *testing.T) {
		assert.Equal(t, "", CalculateAge("1890-01-01", now))
		assert.Equal(t, "", CalculateAge("2030-01-01", now))
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		assert.Equal(t, "", CalculateAge("10/05/1990", now))
	})
}

func TestCategorizeVital(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		expected string
	}{
		{"pulse below critical floor", "pulse", "39", constvars.VitalCategoryCritical},
		{"pulse normal", "pulse", "72", constvars.VitalCategoryNormal},
		{"pulse warning band", "pulse", "105", constvars.VitalCategoryWarning},
		{"pulse at critical ceiling", "pulse", "120", constvars.VitalCategoryCritical},
		{"spo2 below floor", "spo2", "89", constvars.VitalCategoryCritical},
		{"spo2 warning band", "spo2", "92", constvars.VitalCategoryWarning},
		{"spo2 normal", "spo2", "97", constvars.VitalCategoryNormal},
		{"diastolic has no lower critical bound", "bpDiastolic", "20", constvars.VitalCategoryNormal},
		{"diastolic warning", "bpDiastolic", "95", constvars.VitalCategoryWarning},
		{"diastolic critical", "bpDiastolic", "100", constvars.VitalCategoryCritical},
		{"temperature warning", "temperature", "101", constvars.VitalCategoryWarning},
		{"unparseable value gets no label", "pulse", "fast", ""},
		{"unknown field gets no label", "shoeSize", "42", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CategorizeVital(tc.field, tc.value))
		})
	}
}

func TestGCSTotal(t *testing.T) {
	assert.Equal(t, "15", GCSTotal("4", "5", "6"))
	assert.Equal(t, "3", GCSTotal("1", "1", "1"))
	assert.Equal(t, "", GCSTotal("4", "", "6"))
}

func TestAdvisories(t *testing.T) {
	t.Run("low oxygen saturation raises an advisory", func(t *testing.T) {
		advisories := Advisories(models.VitalsState{SpO2: "91"})
		assert.Len(t, advisories, 1)
	})

	t.Run("no advisory at 92 or above", func(t *testing.T) {
		assert.Empty(t, Advisories(models.VitalsState{SpO2: "92"}))
	})

	t.Run("no advisory without a reading", func(t *testing.T) {
		assert.Empty(t, Advisories(models.VitalsState{}))
	})
}

func TestRecalculate(t *testing.T) {
	state := models.VitalsState{
		Weight:      "70",
		Height:      "175",
		BPSystolic:  "120",
		BPDiastolic: "80",
		BMI:         "stale",
		MAP:         "stale",
	}

	result := Recalculate(state)
	assert.Equal(t, "22.9", result.BMI)
	assert.Equal(t, "93", result.MAP)
}

func TestCategorizeCustomVital(t *testing.T) {
	t.Run("inside bounds is normal", func(t *testing.T) {
		assert.Equal(t, constvars.VitalCategoryNormal, CategorizeCustomVital("100", f(70), f(110)))
	})

	t.Run("outside either bound warns", func(t *testing.T) {
		assert.Equal(t, constvars.VitalCategoryWarning, CategorizeCustomVital("65", f(70), f(110)))
		assert.Equal(t, constvars.VitalCategoryWarning, CategorizeCustomVital("120", f(70), f(110)))
	})

	t.Run("a single bound is enough", func(t *testing.T) {
		assert.Equal(t, constvars.VitalCategoryWarning, CategorizeCustomVital("120", nil, f(110)))
		assert.Equal(t, constvars.VitalCategoryNormal, CategorizeCustomVital("100", nil, f(110)))
	})

	t.Run("no band without bounds or a numeric value", func(t *testing.T) {
		assert.Equal(t, "", CategorizeCustomVital("100", nil, nil))
		assert.Equal(t, "", CategorizeCustomVital("high", f(70), f(110)))
	})
}
