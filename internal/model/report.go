package model

// Status is the outcome category of a report.
type Status string

// Report statuses, one per exit code.
const (
	Accepted Status = "accepted"
	Rejected Status = "rejected"
	Failed   Status = "failed"
)

// Report is the verdict for a single source file.
type Report struct {
	Source  Source
	Code    int    // 0 accepted, 1 rejected, 2 I/O failure
	Kind    string // violated rule, empty unless rejected
	Message string // diagnostic text, empty when accepted
	Line    int    // 1-based line of the violation, 0 when unknown
}

// Status maps the report's code onto its status.
func (r Report) Status() Status {
	switch r.Code {
	case 0:
		return Accepted
	case 1:
		return Rejected
	default:
		return Failed
	}
}
