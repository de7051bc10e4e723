package types

import "fmt"

// FatalError reports a data contract violation: malformed catalog or
// query data that the matcher cannot proceed past. It aborts the whole
// search rather than merely excluding one entry, so it is kept distinct
// from the ordinary, recoverable sentinel errors used elsewhere in this
// module.
type FatalError struct {
	Reason   string
	Offender fmt.Stringer
}

// NewFatalError builds a FatalError identifying the offending LowType.
func NewFatalError(reason string, offender LowType) *FatalError {
	return &FatalError{Reason: reason, Offender: offender}
}

// Error implements the error interface.
func (e *FatalError) Error() string {
	if e.Offender == nil {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Offender.String())
}

// ErrLoadingNameUnresolved is raised when a LoadingName placeholder
// reaches the matcher instead of a resolved DisplayName. This is a
// programming error in the loader, not a recoverable match failure.
var ErrLoadingNameUnresolved = fmt.Errorf("LoadingName reached the matcher: catalog was not fully resolved to DisplayName")
