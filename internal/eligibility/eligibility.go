// Package eligibility implements the automatic disqualification rules
// recruiters attach to application questions. Evaluation is pure: no
// I/O, no state, and it never fails — malformed input is skipped.
package eligibility

import (
	"fmt"
	"strings"

	"hireflow/internal/models"
)

// criterionFunc evaluates one answered eliminatory question and returns
// a flag, or nil when the answer passes.
type criterionFunc func(q models.ApplicationQuestion, answer string) *models.DisqualificationFlag

// criterionFor selects the evaluator for a question type. This is the
// closed variant set: anything unlisted has no automatic rule.
//
// Range criteria are evaluated for free-text question types only;
// number-typed questions are not routed through the range check.
func criterionFor(t models.QuestionType) criterionFunc {
	switch t {
	case models.QuestionYesNo:
		return evaluateExpectedAnswer
	case models.QuestionSingleChoice, models.QuestionMultipleChoice:
		return evaluateAcceptedValues
	case models.QuestionShortText, models.QuestionLongText:
		return evaluateRange
	default:
		return nil
	}
}

// Evaluate checks every eliminatory question against the candidate's
// answers and returns the resulting disqualification flags. Questions
// without a non-empty answer are skipped: absence is not a violation.
func Evaluate(questions []models.ApplicationQuestion, answers []models.ApplicationAnswer) []models.DisqualificationFlag {
	byQuestion := make(map[string]string, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a.Answer
	}

	var flags []models.DisqualificationFlag
	for _, q := range questions {
		if !q.IsEliminatory || q.Criteria == nil {
			continue
		}
		answer := strings.TrimSpace(byQuestion[q.ID])
		if answer == "" {
			continue
		}
		check := criterionFor(q.Type)
		if check == nil {
			continue
		}
		if flag := check(q, answer); flag != nil {
			flags = append(flags, *flag)
		}
	}
	return flags
}

// evaluateExpectedAnswer flags a yes/no answer that differs from the
// recruiter's expected option label.
func evaluateExpectedAnswer(q models.ApplicationQuestion, answer string) *models.DisqualificationFlag {
	if answer == q.Criteria.ExpectedAnswer {
		return nil
	}
	return &models.DisqualificationFlag{
		QuestionID:      q.ID,
		QuestionText:    q.Question,
		CandidateAnswer: answer,
		Severity:        models.SeverityEliminated,
		Reason:          fmt.Sprintf("answered %q, required answer is %q", answer, q.Criteria.ExpectedAnswer),
	}
}

// evaluateAcceptedValues flags any selected option outside the accepted
// set. Multiple-choice answers carry several values in one string.
func evaluateAcceptedValues(q models.ApplicationQuestion, answer string) *models.DisqualificationFlag {
	accepted := make(map[string]struct{}, len(q.Criteria.AcceptedValues))
	for _, v := range q.Criteria.AcceptedValues {
		accepted[v] = struct{}{}
	}

	var rejected []string
	for _, v := range (models.ApplicationAnswer{Answer: answer}).Values() {
		if _, ok := accepted[v]; !ok {
			rejected = append(rejected, v)
		}
	}
	if len(rejected) == 0 {
		return nil
	}
	return &models.DisqualificationFlag{
		QuestionID:      q.ID,
		QuestionText:    q.Question,
		CandidateAnswer: answer,
		Severity:        models.SeverityEliminated,
		Reason:          fmt.Sprintf("answer contains value(s) outside the accepted set: %s", strings.Join(rejected, ", ")),
	}
}

// evaluateRange checks a numeric answer against the configured min/max
// band. Values past a bound but inside the tolerance margin produce a
// warning; values past the hard limit produce an elimination. The max
// bound is checked first and at most one branch fires.
func evaluateRange(q models.ApplicationQuestion, answer string) *models.DisqualificationFlag {
	value, ok := ParseNumericAnswer(answer)
	if !ok {
		// Non-numeric input cannot be numerically validated.
		return nil
	}
	c := q.Criteria
	if c.RangeMin == nil && c.RangeMax == nil {
		return nil
	}
	tolerance := c.Tolerance()

	if c.RangeMax != nil && value > *c.RangeMax {
		hardLimit := *c.RangeMax * (1 + tolerance/100)
		if value <= hardLimit {
			return rangeFlag(q, answer, models.SeverityWarning,
				fmt.Sprintf("value %s is above the maximum %s but within the %s%% tolerance (limit %s); negotiable",
					formatNumber(value), formatNumber(*c.RangeMax), formatNumber(tolerance), formatNumber(hardLimit)))
		}
		return rangeFlag(q, answer, models.SeverityEliminated,
			fmt.Sprintf("value %s exceeds the maximum %s beyond the %s%% tolerance (limit %s)",
				formatNumber(value), formatNumber(*c.RangeMax), formatNumber(tolerance), formatNumber(hardLimit)))
	}

	if c.RangeMin != nil && value < *c.RangeMin {
		hardLimit := *c.RangeMin * (1 - tolerance/100)
		if value >= hardLimit {
			return rangeFlag(q, answer, models.SeverityWarning,
				fmt.Sprintf("value %s is below the minimum %s but within the %s%% tolerance (limit %s); negotiable",
					formatNumber(value), formatNumber(*c.RangeMin), formatNumber(tolerance), formatNumber(hardLimit)))
		}
		return rangeFlag(q, answer, models.SeverityEliminated,
			fmt.Sprintf("value %s falls below the minimum %s beyond the %s%% tolerance (limit %s)",
				formatNumber(value), formatNumber(*c.RangeMin), formatNumber(tolerance), formatNumber(hardLimit)))
	}

	return nil
}

func rangeFlag(q models.ApplicationQuestion, answer string, severity models.FlagSeverity, reason string) *models.DisqualificationFlag {
	return &models.DisqualificationFlag{
		QuestionID:      q.ID,
		QuestionText:    q.Question,
		CandidateAnswer: answer,
		Severity:        severity,
		Reason:          reason,
	}
}
