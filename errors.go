package imcore

import "fmt"

// UsageError reports a call made out of sequence by the embedding application,
// e.g. a widget call before Begin. The core panics with a *UsageError because
// continuing would corrupt layout state for the rest of the frame.
type UsageError struct {
	Op  string // API call that detected the problem
	Msg string // Missing precondition, phrased as a fix
}

func (e *UsageError) Error() string {
	return "imcore: " + e.Op + ": " + e.Msg
}

func usageErrorf(op, format string, args ...any) *UsageError {
	return &UsageError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Common preconditions.
const (
	msgNoWindow  = "no current window; call Begin first"
	msgNoFrame   = "no frame in progress; call NewFrame first"
	msgNoContext = "no current context; call CreateContext first"
)
