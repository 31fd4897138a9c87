package diagnostic

import "fmt"

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	Info Severity = iota
	Warning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single non-fatal finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Record identifies which record definition this relates to (if any).
	Record string
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Record != "" {
		return d.Record + ": " + msg
	}

	return msg
}

// Diagnostics holds all findings from a run.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, record string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: Warning,
		Code:     code,
		Message:  message,
		Record:   record,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, record string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: Info,
		Code:     code,
		Message:  message,
		Record:   record,
	})
}

// HasWarnings returns true if there are any warning diagnostics.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}
