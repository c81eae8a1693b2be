package pihole

import "netscene/internal/logging"

// ValidateStats enforces domain sanity constraints on a parsed Stats value.
//
// Checks, each failing fast with a validation error naming the violated
// constraint:
//   - Status must be non-empty
//   - AdsPercentageToday must not exceed 100.0 (100.0 exactly is accepted)
//
// Values below zero are deliberately not rejected: Pi-hole has never been
// observed reporting a negative percentage, and the check mirrors what the
// upstream API promises rather than a symmetric range.
func ValidateStats(stats *Stats) error {
	if stats.Status == "" {
		return NewValidationError("status field is empty")
	}

	if stats.AdsPercentageToday > 100.0 {
		return NewValidationError("ads percentage cannot exceed 100%")
	}

	logging.Debug("Pi-hole response validation passed")
	return nil
}
