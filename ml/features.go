package ml

import "fmt"

// StudentFeatures holds the five inputs for one prediction request.
// Field order matches the order the scaler was fitted with.
type StudentFeatures struct {
	TestScore     float64 `json:"test_score"`
	AverageGrade  float64 `json:"average_grade"`
	Attendance    float64 `json:"attendance"`
	TimesLate     int     `json:"times_late"`
	Participation int     `json:"participation"`
}

func FeatureNames() []string {
	return []string{
		"Standardized_Test_Score",
		"Average_Grade",
		"Attendance_Percentage",
		"Times_Late",
		"Participation_Rating",
	}
}

func (f StudentFeatures) Vector() []float64 {
	return []float64{
		f.TestScore,
		f.AverageGrade,
		f.Attendance,
		float64(f.TimesLate),
		float64(f.Participation),
	}
}

// ValidationError reports a single out-of-range field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate rejects values outside the declared ranges before they reach
// the scaler. The form front end validates too, but out-of-range values
// must not produce undefined numeric behavior here.
func (f StudentFeatures) Validate() error {
	if f.TestScore < 0 || f.TestScore > 100 {
		return &ValidationError{Field: "test_score", Message: "must be between 0 and 100"}
	}
	if f.AverageGrade < 0 || f.AverageGrade > 100 {
		return &ValidationError{Field: "average_grade", Message: "must be between 0 and 100"}
	}
	if f.Attendance < 0 || f.Attendance > 100 {
		return &ValidationError{Field: "attendance", Message: "must be between 0 and 100"}
	}
	if f.TimesLate < 0 {
		return &ValidationError{Field: "times_late", Message: "must not be negative"}
	}
	if f.Participation < 1 || f.Participation > 5 {
		return &ValidationError{Field: "participation", Message: "must be between 1 and 5"}
	}
	return nil
}
