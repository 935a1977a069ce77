package advisor

import (
	"fmt"
	"strconv"

	"edupredict/ml"
)

// Rule is one threshold comparison in the advisory cascade. Rules are
// evaluated independently, in table order; several can fire at once.
type Rule struct {
	Name        string   `json:"name"`
	Condition   string   `json:"condition"`
	Observation string   `json:"observation"`
	Suggestions []string `json:"suggestions"`

	Triggered func(f ml.StudentFeatures) bool `json:"-"`
}

var rules = []Rule{
	{
		Name:        "low_test_score",
		Condition:   "test_score < 45",
		Observation: "* *Observation:* Low Standardized Test Score.",
		Suggestions: []string{
			"    * *Suggestion:* Focus on foundational concepts for test topics.",
		},
		Triggered: func(f ml.StudentFeatures) bool { return f.TestScore < 45 },
	},
	{
		Name:        "low_average_grade",
		Condition:   "average_grade < 70",
		Observation: "* *Observation:* Low Average Grade.",
		Suggestions: []string{
			"    * *Suggestion:* Review recent assignments for weaknesses.",
			"    * *Suggestion:* Offer re-assessment or extra credit opportunities.",
		},
		Triggered: func(f ml.StudentFeatures) bool { return f.AverageGrade < 70 },
	},
	{
		Name:        "low_attendance",
		Condition:   "attendance < 85",
		Observation: "* *Observation:* Low Attendance.",
		Suggestions: []string{
			"    * *Suggestion:* Discuss barriers to attendance.",
		},
		Triggered: func(f ml.StudentFeatures) bool { return f.Attendance < 85 },
	},
	{
		Name:        "low_participation",
		Condition:   "participation <= 2",
		Observation: "* *Observation:* Low Class Participation.",
		Suggestions: []string{
			"    * *Suggestion:* Create low-pressure participation opportunities.",
			"    * *Suggestion:* Reinforce participation attempts positively.",
		},
		Triggered: func(f ml.StudentFeatures) bool { return f.Participation <= 2 },
	},
}

var generalActions = []string{
	"* Schedule a one-on-one meeting to discuss challenges and learning style.",
	"* Provide simplified explanations and break down complex topics.",
	"* Offer extra practice exercises tailored to weak areas.",
	"* Utilize visual aids and hands-on activities.",
	"* Encourage questions in a supportive environment.",
	"* Recommend peer tutoring or study groups.",
}

const (
	separator          = "---"
	actionsHeader      = "**Recommended Actions:**"
	observationsHeader = "\n**Observations & Targeted Suggestions:**"
	fallbackLine       = "* No specific low metrics triggered; focus on general strategies."
	followUpLine       = "**Follow Up:** Monitor progress and adjust strategies as needed."
)

// Rules returns a copy of the cascade for inspection endpoints.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// FormatProbability renders p as a percentage with one decimal place.
// Rounding is strconv's round-half-to-even: 0.734 renders as "73.4%".
func FormatProbability(p float64) string {
	return strconv.FormatFloat(p*100, 'f', 1, 64) + "%"
}

// Advise derives the ordered advisory list from the prediction and the raw
// inputs. Pure: identical inputs always yield the identical list.
func Advise(label int, probability float64, f ml.StudentFeatures) []string {
	if label != 1 {
		return []string{}
	}

	out := make([]string, 0, 24)
	out = append(out, fmt.Sprintf("**Student identified as potentially needing support (Probability: %s)**", FormatProbability(probability)))
	out = append(out, separator, actionsHeader)
	out = append(out, generalActions...)
	out = append(out, observationsHeader)

	triggered := false
	for _, rule := range rules {
		if !rule.Triggered(f) {
			continue
		}
		triggered = true
		out = append(out, rule.Observation)
		out = append(out, rule.Suggestions...)
	}
	if !triggered {
		out = append(out, fallbackLine)
	}

	out = append(out, "\n"+separator, followUpLine)
	return out
}
