// pkg/xcp_err/classification.go
//
// Error categories and the exit codes they map to.

package xcp_err

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory tells the command layer which exit code an error gets.
type ErrorCategory int

const (
	// CategoryIO - report or output files unreadable/unwritable (exit 1)
	CategoryIO ErrorCategory = iota
	// CategoryValidation - missing or invalid flags and config (exit 2)
	CategoryValidation
	// CategoryParse - non-numeric byte counts or access counts (exit 3)
	CategoryParse
	// CategoryAlignment - report columns of unequal length under strict policy (exit 4)
	CategoryAlignment
	// CategoryInternal - bugs in xcpreport itself (exit 5)
	CategoryInternal
)

var categoryInfo = map[ErrorCategory]struct {
	name string
	exit int
}{
	CategoryIO:         {"io", 1},
	CategoryValidation: {"validation", 2},
	CategoryParse:      {"parse", 3},
	CategoryAlignment:  {"alignment", 4},
	CategoryInternal:   {"internal", 5},
}

func (c ErrorCategory) String() string {
	if info, ok := categoryInfo[c]; ok {
		return info.name
	}
	return "unknown"
}

// ExitCode returns the process exit code for c. Unknown categories exit 1.
func (c ErrorCategory) ExitCode() int {
	if info, ok := categoryInfo[c]; ok {
		return info.exit
	}
	return 1
}

// ClassifiedError is an error with a category and the steps that fix it.
// The steps are exposed as hints, so they print apart from the message.
type ClassifiedError struct {
	Category    ErrorCategory
	Message     string
	Cause       error
	Remediation []string
}

func (e *ClassifiedError) Error() string {
	if e.Cause == nil || e.Cause.Error() == e.Message {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Cause
}

// ErrorHint makes the remediation steps visible to errors.GetAllHints.
func (e *ClassifiedError) ErrorHint() string {
	return strings.Join(e.Remediation, "\n")
}

// ExitCode returns the exit code of the error category.
func (e *ClassifiedError) ExitCode() int {
	return e.Category.ExitCode()
}

// GetExitCode extracts exit code from any error.
// Returns 0 for nil, the category code for classified errors, 1 for others.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	if c, ok := CategoryOf(err); ok {
		return c.ExitCode()
	}
	return 1
}

// CategoryOf returns the category of the outermost classified error in the chain.
func CategoryOf(err error) (ErrorCategory, bool) {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.Category, true
	}
	return 0, false
}

// IsCategory reports whether err carries the given category.
func IsCategory(err error, category ErrorCategory) bool {
	c, ok := CategoryOf(err)
	return ok && c == category
}

func classify(category ErrorCategory, message string, cause error, remediation []string) error {
	return &ClassifiedError{
		Category:    category,
		Message:     message,
		Cause:       cause,
		Remediation: remediation,
	}
}

// NewIOError reports an unreadable report or an unwritable output.
func NewIOError(message string, cause error, remediation ...string) error {
	return classify(CategoryIO, message, cause, remediation)
}

// NewValidationError reports a missing or invalid flag or setting.
func NewValidationError(message string, remediation ...string) error {
	return classify(CategoryValidation, message, nil, remediation)
}

// NewParseError reports report values that are not whole numbers.
func NewParseError(message string, cause error, remediation ...string) error {
	return classify(CategoryParse, message, cause, remediation)
}

// ColumnLength names one report column and its length.
type ColumnLength struct {
	Name string
	Len  int
}

// NewAlignmentError reports report columns of unequal length, listed in the
// order given.
func NewAlignmentError(lengths []ColumnLength) error {
	parts := make([]string, 0, len(lengths))
	for _, l := range lengths {
		parts = append(parts, fmt.Sprintf("%s=%d", l.Name, l.Len))
	}
	return classify(CategoryAlignment,
		"report columns have unequal lengths: "+strings.Join(parts, ", "), nil,
		[]string{
			"Check that every scan block in the report has Accessed, Top File Owners and Total space used lines",
			"Rerun without --strict to truncate to the shortest column",
		})
}

// NewInternalError wraps a failure that indicates a bug in xcpreport.
func NewInternalError(message string, cause error) error {
	return classify(CategoryInternal, message, cause, []string{
		"This is likely a bug in xcpreport",
		"Include this error message and the report that triggered it when reporting",
	})
}
