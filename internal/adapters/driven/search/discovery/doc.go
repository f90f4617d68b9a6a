// Package discovery adapts the hosted Discovery Engine search API to
// the core SearchEngine port. It builds API requests from domain search
// requests, rate-limits outbound calls, and maps API responses back
// into domain results, summaries and citations.
package discovery
