package domain

import "strings"

// Criterion selects which games an operation applies to. Any value other
// than the declared sentinels is treated as an exact team code.
type Criterion string

const (
	CriterionAll        Criterion = "ALL"
	CriterionInProgress Criterion = "IN-PROGRESS"
	CriterionToday      Criterion = "TODAY"
	CriterionTomorrow   Criterion = "TOMORROW"
	CriterionYesterday  Criterion = "YESTERDAY"
	CriterionNotFinal   Criterion = "NOT-FINAL"
	CriterionFinal      Criterion = "FINAL"
)

// NormalizeCriterion upper-cases raw user input into a Criterion.
func NormalizeCriterion(raw string) Criterion {
	return Criterion(strings.ToUpper(strings.TrimSpace(raw)))
}

// TeamCode reports whether the criterion names a specific team rather than a
// selection sentinel.
func (c Criterion) TeamCode() bool {
	switch c {
	case CriterionAll, CriterionInProgress, CriterionToday, CriterionTomorrow,
		CriterionYesterday, CriterionNotFinal, CriterionFinal:
		return false
	}
	return c != ""
}
