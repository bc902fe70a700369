package core

// Logger is implemented by the logging services (console in DEV, Rollbar in
// deployed environments). args may carry errors or arbitrary context values
// depending on the implementation.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
