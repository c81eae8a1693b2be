// Package pihole retrieves ad-blocking statistics from a Pi-hole instance.
//
// Pi-hole's API surface changed across major versions: pre-v6 installs expose
// a PHP admin API at /admin/api.php, while v6 (FTL) exposes a REST API under
// /api with session-based authentication. A user entering a host has no way
// to know which of these their install speaks, so this package probes both.
//
// # Retrieval Protocol
//
//  1. Normalize the host into a base URL (http:// is assumed when no scheme
//     is given) and derive the modern and legacy candidate endpoints
//  2. If a password was supplied, attempt a session exchange against
//     /api/auth; failure here degrades silently to an unauthenticated fetch
//  3. Probe the modern endpoint, then the legacy endpoint, attaching the
//     session header when present
//  4. Accept the first response that is non-empty, not an HTML page, parses
//     as the stats shape, and passes validation
//
// A response that parses but fails validation aborts the probe sequence
// immediately: a real-but-wrong answer is distinguished from no answer.
//
// # Usage Example
//
//	client := pihole.NewClient()
//	stats, err := client.FetchStats("192.168.1.100", "")
//	if err != nil {
//	    fmt.Println(pihole.GetTroubleshootingHint(err))
//	    return
//	}
//	fmt.Println(stats.FormatCompact())
//
// # Timeouts
//
// Every network call is bounded by a 10-second timeout. Timeouts are treated
// like any other transport failure: skip to the next endpoint.
package pihole
