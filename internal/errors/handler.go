package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the escape sequences used when reporting errors.
// It keeps this package free of any dependency on the UI layer.
type ColorProvider interface {
	Yellow() string
	Red() string
	Reset() string
}

// HandleCheckError reports a failed check on out and maps it to an exit
// code. A nil error yields ExitSuccess and prints nothing.
//
// Parameters:
//   - err: The error returned by the check.
//   - duration: How long the check ran before failing (0 if unknown).
//   - out: The writer for the user-facing message.
//   - colors: The color provider for the message.
//
// Returns:
//   - int: The exit code matching the error class.
func HandleCheckError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	suffix := ""
	if duration > 0 {
		suffix = fmt.Sprintf(" after %s", duration)
	}

	var (
		validationErr ValidationError
		configErr     ConfigError
		taskErr       *TaskFailure
	)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sStatus: Failure (Timeout). The time limit was exceeded%s.%s\n", colors.Red(), suffix, colors.Reset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", colors.Yellow(), suffix, colors.Reset())
		return ExitErrorCanceled
	case errors.As(err, &validationErr), errors.As(err, &configErr):
		fmt.Fprintf(out, "%sStatus: Invalid input. %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorConfig
	case errors.As(err, &taskErr):
		fmt.Fprintf(out, "%sStatus: Failure. Segment %d did not complete: %v%s\n", colors.Red(), taskErr.Segment, taskErr.Cause, colors.Reset())
		return ExitErrorGeneric
	default:
		fmt.Fprintf(out, "%sStatus: Failure. Unexpected error%s: %v%s\n", colors.Red(), suffix, err, colors.Reset())
		return ExitErrorGeneric
	}
}
