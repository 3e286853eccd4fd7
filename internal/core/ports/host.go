package ports

// Host describes the machine the updaters run on.
//
//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type Host interface {
	// OS returns the operating system name, as in runtime.GOOS.
	OS() string

	// HasCommand reports whether name resolves to an executable on PATH.
	HasCommand(name string) bool

	// DirExists reports whether path is an existing directory.
	DirExists(path string) bool
}
