package domain

import "sync"

// Secret holds a privileged-access password in memory.
// It is never serialised and its String form is redacted.
type Secret struct {
	mu    sync.Mutex
	value []byte
}

// NewSecret takes ownership of value. The caller must not reuse the slice.
func NewSecret(value []byte) *Secret {
	return &Secret{value: value}
}

// Line returns a fresh copy of the secret terminated by a newline, ready to be
// fed to a password prompt on stdin. Callers should Wipe it after use.
func (s *Secret) Line() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := make([]byte, len(s.value)+1)
	copy(line, s.value)
	line[len(s.value)] = '\n'
	return line
}

// Empty reports whether the secret holds no bytes.
func (s *Secret) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.value) == 0
}

// Clear overwrites the secret and releases it.
func (s *Secret) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	Wipe(s.value)
	s.value = nil
}

// String implements fmt.Stringer without revealing the value.
func (s *Secret) String() string {
	return "[REDACTED]"
}

// GoString keeps %#v from printing the bytes.
func (s *Secret) GoString() string {
	return s.String()
}

// Wipe zeroes b in place.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
