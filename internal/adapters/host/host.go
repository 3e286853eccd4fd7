// Package host answers questions about the machine upkeep runs on.
package host

import (
	"os"
	"os/exec"
	"runtime"
)

// System implements ports.Host for the current process.
type System struct {
	goos     string
	lookPath func(string) (string, error)
}

// New returns a System for runtime.GOOS that searches PATH.
func New() *System {
	return &System{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
	}
}

// OS returns the operating system name.
func (s *System) OS() string {
	return s.goos
}

// HasCommand reports whether name is an executable on PATH.
func (s *System) HasCommand(name string) bool {
	_, err := s.lookPath(name)
	return err == nil
}

// DirExists reports whether path is an existing directory.
func (s *System) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
