// Package alerts aggregates delivery failures per org and integration over a
// rolling window and dispatches digests through configured channels.
package alerts

import (
	"fmt"
	"strings"
	"time"
)

// Digest summarizes the failures of one integration for one org in a window.
type Digest struct {
	OrgID           string
	IntegrationID   string
	IntegrationName string
	WindowStart     time.Time
	WindowEnd       time.Time
	TotalFailures   int
	ByErrorKind     map[string]int
	Samples         []Sample
	DashboardURL    string
}

// Sample is one failure snippet included in a digest.
type Sample struct {
	TraceID      string
	ErrorKind    string
	ErrorMessage string
	OccurredAt   time.Time
}

// Subject returns the digest subject line.
func (d *Digest) Subject() string {
	return fmt.Sprintf("[relayforge] %d delivery failure(s) for %s", d.TotalFailures, d.IntegrationName)
}

// Body renders the plain-text digest used by email and as Slack fallback
// text.
func (d *Digest) Body() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Integration: %s (%s)\n", d.IntegrationName, d.IntegrationID)
	fmt.Fprintf(&b, "Window: %s – %s\n", d.WindowStart.UTC().Format(time.RFC3339), d.WindowEnd.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Failures: %d\n\n", d.TotalFailures)

	if len(d.ByErrorKind) > 0 {
		b.WriteString("By error kind:\n")
		for kind, n := range d.ByErrorKind {
			fmt.Fprintf(&b, "  %-24s %d\n", kind, n)
		}
		b.WriteString("\n")
	}

	for i, s := range d.Samples {
		fmt.Fprintf(&b, "Sample %d (%s):\n  trace: %s\n  error: %s\n",
			i+1, s.OccurredAt.UTC().Format(time.RFC3339), s.TraceID, s.ErrorMessage)
	}

	if d.DashboardURL != "" {
		fmt.Fprintf(&b, "\nDetails: %s/integrations/%s/logs\n", d.DashboardURL, d.IntegrationID)
	}
	return b.String()
}

// AutoDisabledDigest builds the immediate notice sent when an integration is
// deactivated by the failure policy.
func AutoDisabledDigest(orgID, integrationID, integrationName string, consecutiveFailures int, dashboardURL string) *Digest {
	now := time.Now()
	return &Digest{
		OrgID:           orgID,
		IntegrationID:   integrationID,
		IntegrationName: integrationName,
		WindowStart:     now,
		WindowEnd:       now,
		TotalFailures:   consecutiveFailures,
		ByErrorKind:     map[string]int{"AUTO_DISABLED": consecutiveFailures},
		DashboardURL:    dashboardURL,
	}
}
