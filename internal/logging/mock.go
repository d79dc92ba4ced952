package logging

import "sync"

// MockEntry captures a single logged message for assertions in tests.
type MockEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// MockLogger is a Logger implementation that records entries instead of
// writing them anywhere. It is safe for concurrent use.
type MockLogger struct {
	mu      sync.Mutex
	entries []MockEntry
	fields  map[string]interface{}
}

// NewMockLogger creates a new MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{fields: map[string]interface{}{}}
}

// Entries returns a copy of everything logged so far.
func (m *MockLogger) Entries() []MockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// HasMessage reports whether any entry carries the given message.
func (m *MockLogger) HasMessage(msg string) bool {
	for _, e := range m.Entries() {
		if e.Message == msg {
			return true
		}
	}
	return false
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	combined := make(map[string]interface{}, len(m.fields)+len(fields))
	for k, v := range m.fields {
		combined[k] = v
	}
	for _, f := range fields {
		combined[f.Key] = f.Value
	}
	m.entries = append(m.entries, MockEntry{Level: level, Message: msg, Fields: combined})
}

// Debug records a debug-level entry.
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields) }

// Info records an info-level entry.
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("info", msg, fields) }

// Warn records a warn-level entry.
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("warn", msg, fields) }

// Error records an error-level entry.
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields) }

// Fatal records a fatal-level entry. Unlike a real logger it does not exit,
// so tests can assert on fatal paths.
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("fatal", msg, fields) }

// WithError returns a child logger with an error field attached.
func (m *MockLogger) WithError(err error) Logger {
	return m.WithField(FieldError, err)
}

// WithField returns a child logger with a single field attached.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a child logger with multiple fields attached. The child
// forwards records to the parent so everything logged remains visible on the
// parent's Entries.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	m.mu.Lock()
	defer m.mu.Unlock()
	merged := make(map[string]interface{}, len(m.fields)+len(fields))
	for k, v := range m.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}
	return &mockChild{parent: m, fields: merged}
}

// mockChild forwards records to its parent while carrying extra fields.
type mockChild struct {
	parent *MockLogger
	fields map[string]interface{}
}

func (c *mockChild) withExtra(fields []Field) []Field {
	out := make([]Field, 0, len(c.fields)+len(fields))
	for k, v := range c.fields {
		out = append(out, Field{Key: k, Value: v})
	}
	return append(out, fields...)
}

func (c *mockChild) Debug(msg string, fields ...Field) { c.parent.Debug(msg, c.withExtra(fields)...) }
func (c *mockChild) Info(msg string, fields ...Field)  { c.parent.Info(msg, c.withExtra(fields)...) }
func (c *mockChild) Warn(msg string, fields ...Field)  { c.parent.Warn(msg, c.withExtra(fields)...) }
func (c *mockChild) Error(msg string, fields ...Field) { c.parent.Error(msg, c.withExtra(fields)...) }
func (c *mockChild) Fatal(msg string, fields ...Field) { c.parent.Fatal(msg, c.withExtra(fields)...) }

func (c *mockChild) WithError(err error) Logger {
	return c.WithField(FieldError, err)
}

func (c *mockChild) WithField(key string, value interface{}) Logger {
	return c.WithFields(Field{Key: key, Value: value})
}

func (c *mockChild) WithFields(fields ...Field) Logger {
	merged := make(map[string]interface{}, len(c.fields)+len(fields))
	for k, v := range c.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}
	return &mockChild{parent: c.parent, fields: merged}
}
