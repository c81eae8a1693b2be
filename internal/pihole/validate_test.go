package pihole

import "testing"

func TestValidateStats(t *testing.T) {
	tests := []struct {
		name    string
		stats   Stats
		wantErr bool
	}{
		{
			name: "typical enabled instance",
			stats: Stats{
				DomainsBeingBlocked: 150000,
				DNSQueriesToday:     12345,
				AdsBlockedToday:     2345,
				AdsPercentageToday:  19.0,
				Status:              "enabled",
			},
			wantErr: false,
		},
		{
			name: "disabled status is still valid",
			stats: Stats{
				AdsPercentageToday: 0,
				Status:             "disabled",
			},
			wantErr: false,
		},
		{
			name: "exactly 100 percent accepted",
			stats: Stats{
				AdsPercentageToday: 100.0,
				Status:             "enabled",
			},
			wantErr: false,
		},
		{
			name: "zero percent accepted",
			stats: Stats{
				AdsPercentageToday: 0.0,
				Status:             "enabled",
			},
			wantErr: false,
		},
		{
			name: "over 100 percent rejected",
			stats: Stats{
				AdsPercentageToday: 150.0,
				Status:             "enabled",
			},
			wantErr: true,
		},
		{
			name: "barely over 100 percent rejected",
			stats: Stats{
				AdsPercentageToday: 100.1,
				Status:             "enabled",
			},
			wantErr: true,
		},
		{
			name: "empty status rejected",
			stats: Stats{
				AdsPercentageToday: 10.0,
				Status:             "",
			},
			wantErr: true,
		},
		{
			// Negative values pass: the check is an upper bound only
			name: "negative percent accepted",
			stats: Stats{
				AdsPercentageToday: -5.0,
				Status:             "enabled",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStats(&tt.stats)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStats() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !IsValidationError(err) {
				t.Errorf("ValidateStats() error = %v, want validation error type", err)
			}
		})
	}
}

func TestValidateStats_EmptyStatusCheckedFirst(t *testing.T) {
	// Both constraints violated: the status check wins
	stats := Stats{AdsPercentageToday: 200.0, Status: ""}

	err := ValidateStats(&stats)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	phErr, ok := err.(*PiholeError)
	if !ok {
		t.Fatalf("error type = %T, want *PiholeError", err)
	}
	if phErr.Message != "status field is empty" {
		t.Errorf("Message = %q, want the status message", phErr.Message)
	}
}
