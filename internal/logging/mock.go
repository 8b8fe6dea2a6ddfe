package logging

// MockLogger is a no-op Logger that records messages for test assertions.
type MockLogger struct {
	Messages []MockMessage
}

// MockMessage is one recorded log call.
type MockMessage struct {
	Level  string
	Msg    string
	Fields []Field
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.Messages = append(m.Messages, MockMessage{Level: level, Msg: msg, Fields: fields})
}

// Debug records a debug-level message.
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields) }

// Info records an info-level message.
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("info", msg, fields) }

// Warn records a warn-level message.
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("warn", msg, fields) }

// Error records an error-level message.
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields) }

// Fatal records a fatal-level message without exiting.
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("fatal", msg, fields) }

// WithError returns the same logger; mocks do not track context.
func (m *MockLogger) WithError(err error) Logger { return m }

// WithField returns the same logger; mocks do not track context.
func (m *MockLogger) WithField(key string, value interface{}) Logger { return m }

// WithFields returns the same logger; mocks do not track context.
func (m *MockLogger) WithFields(fields ...Field) Logger { return m }
