// Package asmerr implements the error and warning taxonomy shared by the
// assembler and the simulator: a Kind enumerating what went wrong, an Issue
// carrying the message and source position, and an IssueList that
// accumulates issues across an entire assembly run the way the teacher's
// parser.ErrorList does for its own two-pass parser.
package asmerr

import "fmt"

// Kind classifies an Issue by what went wrong, independent of the specific
// message text. Callers that need to react programmatically to a
// particular failure mode (for example, the CLI deciding an exit code)
// switch on Kind rather than matching message strings.
type Kind int

const (
	BadSyntax Kind = iota
	BadOperand
	SizeMismatch
	DuplicateLabel
	UnknownOpcode
	OutOfRange
	BusError
	AddressError
	DecodeError
)

func (k Kind) String() string {
	switch k {
	case BadSyntax:
		return "BadSyntax"
	case BadOperand:
		return "BadOperand"
	case SizeMismatch:
		return "SizeMismatch"
	case DuplicateLabel:
		return "DuplicateLabel"
	case UnknownOpcode:
		return "UnknownOpcode"
	case OutOfRange:
		return "OutOfRange"
	case BusError:
		return "BusError"
	case AddressError:
		return "AddressError"
	case DecodeError:
		return "DecodeError"
	default:
		return "Unknown"
	}
}

// Severity distinguishes an Issue that aborts assembly from one that is
// merely reported to the user.
type Severity int

const (
	ERROR Severity = iota
	WARNING
)

func (s Severity) String() string {
	if s == WARNING {
		return "WARNING"
	}
	return "ERROR"
}

// Issue is a single diagnostic produced while assembling or simulating a
// program: what kind of problem it is, how severe it is, a human-readable
// message, and the source line it came from (0 when not applicable, as for
// a runtime simulator fault that has no source line).
type Issue struct {
	Kind     Kind
	Severity Severity
	Message  string
	Line     int
}

func (i Issue) Error() string {
	if i.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", i.Severity, i.Line, i.Message)
	}
	return fmt.Sprintf("%s: %s", i.Severity, i.Message)
}

// New builds an ERROR-severity Issue at the given line.
func New(kind Kind, line int, format string, args ...any) Issue {
	return Issue{Kind: kind, Severity: ERROR, Message: fmt.Sprintf(format, args...), Line: line}
}

// NewWarning builds a WARNING-severity Issue at the given line.
func NewWarning(kind Kind, line int, format string, args ...any) Issue {
	return Issue{Kind: kind, Severity: WARNING, Message: fmt.Sprintf(format, args...), Line: line}
}

// IssueList accumulates issues across an assembly run, mirroring the way a
// single parse pass can surface more than one problem before giving up.
type IssueList struct {
	Issues []Issue
}

// Add appends an issue to the list.
func (l *IssueList) Add(i Issue) {
	l.Issues = append(l.Issues, i)
}

// Addf builds and appends an ERROR-severity issue.
func (l *IssueList) Addf(kind Kind, line int, format string, args ...any) {
	l.Add(New(kind, line, format, args...))
}

// Warnf builds and appends a WARNING-severity issue.
func (l *IssueList) Warnf(kind Kind, line int, format string, args ...any) {
	l.Add(NewWarning(kind, line, format, args...))
}

// HasErrors reports whether any ERROR-severity issue has been recorded.
func (l *IssueList) HasErrors() bool {
	for _, i := range l.Issues {
		if i.Severity == ERROR {
			return true
		}
	}
	return false
}

// Errors returns only the ERROR-severity issues.
func (l *IssueList) Errors() []Issue {
	var out []Issue
	for _, i := range l.Issues {
		if i.Severity == ERROR {
			out = append(out, i)
		}
	}
	return out
}

// Warnings returns only the WARNING-severity issues.
func (l *IssueList) Warnings() []Issue {
	var out []Issue
	for _, i := range l.Issues {
		if i.Severity == WARNING {
			out = append(out, i)
		}
	}
	return out
}

func (l *IssueList) Error() string {
	if len(l.Issues) == 0 {
		return "no issues"
	}
	s := fmt.Sprintf("%d issue(s):", len(l.Issues))
	for _, i := range l.Issues {
		s += "\n  " + i.Error()
	}
	return s
}
