package errcode

// Code is a stable error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Unsupported marks an optional capability or counter that does not
	// exist on the current board. Callers recover from it locally; it is
	// never a failure of the operation as a whole.
	Unsupported Code = "unsupported"

	// HardwareFault marks a genuine failure of the underlying read or write
	// capability (bus error, driver fault). It always propagates.
	HardwareFault Code = "hardware_fault"

	// InvalidParams marks a caller precondition violation (negative blink
	// count, nil capability). Never silently clamped.
	InvalidParams Code = "invalid_params"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = s + ": " + e.Op
	}
	if e.Msg != "" {
		s = s + ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// Fault wraps a low-level capability error as a HardwareFault with context.
func Fault(op string, err error) error {
	return &E{C: HardwareFault, Op: op, Err: err}
}
