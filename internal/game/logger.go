package game

// Logger is the subset of nakama's runtime.Logger the engine needs. The
// ports adapter passes its runtime logger straight through; simulations and
// tests use NopLogger.
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(format string, v ...interface{}) {}
func (NopLogger) Info(format string, v ...interface{})  {}
func (NopLogger) Warn(format string, v ...interface{})  {}
func (NopLogger) Error(format string, v ...interface{}) {}
