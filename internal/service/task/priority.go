package task

import "strings"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ValidatePriority normalizes an optional priority value. Absent values
// default to medium; anything outside the enum is an InvalidInputError.
// Create, update and the list filter all validate through here so the rules
// cannot drift.
func ValidatePriority(value *string) (string, error) {
	if value == nil {
		return PriorityMedium, nil
	}

	switch v := strings.ToLower(*value); v {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return v, nil
	default:
		return "", invalidInput("priority must be one of low|medium|high")
	}
}
