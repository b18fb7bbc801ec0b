// Package doctor runs health checks on the drawer setup: the configuration
// file, the spring it configures, and the terminal the menus draw into.
package doctor

import "context"

// Status grades a single finding.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Finding is one graded line of a report.
type Finding struct {
	Label  string `json:"label"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Report is the outcome of one check.
type Report struct {
	Name     string    `json:"name"`
	Findings []Finding `json:"findings"`
}

func (r *Report) add(status Status, label, detail string) {
	r.Findings = append(r.Findings, Finding{Label: label, Status: status, Detail: detail})
}

// Check is a single diagnostic.
type Check interface {
	Name() string
	Run(ctx context.Context) Report
}

// RunAll runs checks in order. It stops early if ctx is cancelled.
func RunAll(ctx context.Context, checks []Check) []Report {
	reports := make([]Report, 0, len(checks))
	for _, check := range checks {
		if ctx.Err() != nil {
			break
		}
		reports = append(reports, check.Run(ctx))
	}
	return reports
}

// Tally counts findings by status.
type Tally struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

// Healthy reports whether nothing failed.
func (t Tally) Healthy() bool {
	return t.Failed == 0
}

// Count tallies the findings of every report.
func Count(reports []Report) Tally {
	var t Tally
	for _, r := range reports {
		for _, f := range r.Findings {
			switch f.Status {
			case StatusPass:
				t.Passed++
			case StatusWarn:
				t.Warned++
			case StatusFail:
				t.Failed++
			}
		}
	}
	return t
}
