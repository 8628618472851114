package engine

// Diagnostics receives non-fatal warnings from the engine: catalogue
// entries skipped during normalization and cuts that could not be matched
// back to the working list. Injecting the sink keeps the engine free of
// global logging and independently testable.
type Diagnostics interface {
	Warnf(format string, args ...any)
}

// DiagnosticsFunc adapts a plain function to the Diagnostics interface.
type DiagnosticsFunc func(format string, args ...any)

func (f DiagnosticsFunc) Warnf(format string, args ...any) {
	f(format, args...)
}

type nopDiagnostics struct{}

func (nopDiagnostics) Warnf(string, ...any) {}

// NopDiagnostics discards all warnings. It is the default sink.
var NopDiagnostics Diagnostics = nopDiagnostics{}
