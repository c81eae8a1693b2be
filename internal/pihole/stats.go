package pihole

import (
	"fmt"
	"strings"
)

// Stats holds the ad-blocking summary reported by a Pi-hole instance.
// Both the legacy (/admin/api.php?summaryRaw) and modern (/api/stats/summary)
// endpoints produce this shape. A Stats value is only ever constructed from a
// single JSON document, never partially populated.
type Stats struct {
	// DomainsBeingBlocked is the number of domains on the blocklist
	DomainsBeingBlocked uint64 `json:"domains_being_blocked"`

	// DNSQueriesToday is the total number of DNS queries handled today
	DNSQueriesToday uint64 `json:"dns_queries_today"`

	// AdsBlockedToday is the number of queries blocked today
	AdsBlockedToday uint64 `json:"ads_blocked_today"`

	// AdsPercentageToday is the blocked fraction of today's queries, 0-100
	AdsPercentageToday float64 `json:"ads_percentage_today"`

	// Status is the blocking status reported by the Pi-hole ("enabled"/"disabled")
	Status string `json:"status"`
}

// FormatDetailed returns a multi-line human-readable summary
func (s *Stats) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("Pi-hole Statistics\n")
	b.WriteString("==================\n\n")
	b.WriteString(fmt.Sprintf("  Status:           %s\n", s.Status))
	b.WriteString(fmt.Sprintf("  Domains blocked:  %d\n", s.DomainsBeingBlocked))
	b.WriteString(fmt.Sprintf("  Queries today:    %d\n", s.DNSQueriesToday))
	b.WriteString(fmt.Sprintf("  Ads blocked:      %d\n", s.AdsBlockedToday))
	b.WriteString(fmt.Sprintf("  Ads percentage:   %.2f%%\n", s.AdsPercentageToday))

	return b.String()
}

// FormatCompact returns a single-line summary
func (s *Stats) FormatCompact() string {
	return fmt.Sprintf("%s | %d queries | %d blocked (%.1f%%)",
		s.Status, s.DNSQueriesToday, s.AdsBlockedToday, s.AdsPercentageToday)
}
