package domain

// RiskLevel enumerates advisory rule outcomes.
type RiskLevel string

const (
	RiskSafe     RiskLevel = "safe"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Severity orders levels from safe (0) to critical (4).
func (l RiskLevel) Severity() int {
	switch l {
	case RiskLow:
		return 1
	case RiskMedium:
		return 2
	case RiskHigh:
		return 3
	case RiskCritical:
		return 4
	default:
		return 0
	}
}

// RiskAssessment aggregates rule matches for a suggested command. It is shown
// to the operator before the confirmation prompt and never replaces it.
type RiskAssessment struct {
	Level        RiskLevel
	Reasons      []string
	MatchedRules []string
}

// Risky reports whether any rule above safe matched.
func (r RiskAssessment) Risky() bool {
	return r.Level.Severity() > 0
}
