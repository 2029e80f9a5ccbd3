package vos

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// VIO provides the standard I/O streams of a command.
type VIO interface {
	Stdin() io.Reader
	Stdout() io.Writer
	Stderr() io.Writer
}

// VFS provides the filesystem operations the interpreter's verbs need.
// Relative paths are resolved against the session working directory.
type VFS interface {
	// Getwd returns the session working directory, always absolute.
	Getwd() string
	// Chdir changes the session working directory. On failure the
	// working directory is left untouched.
	Chdir(dir string) error
	Mkdir(name string, perm os.FileMode) error
	Create(name string) (afero.File, error)
	Stat(name string) (os.FileInfo, error)
}

// VProc describes the running command and its access to real child
// processes.
type VProc interface {
	// Args holds the command's tokens; Args[0] is the verb.
	Args() []string
	// RemoveUtility is the absolute path of the external recursive
	// removal binary.
	RemoveUtility() string
	// SpawnWait starts name with args in the session working directory
	// and blocks until the child exits. The child's exit status is
	// discarded; only a failure to start is reported.
	SpawnWait(name string, args ...string) error
}

// VOS is the view of the session a single command invocation receives.
type VOS interface {
	VIO
	VFS
	VProc
}

// ProcessFunc is the main entry point of a builtin command.
type ProcessFunc func(virtOS VOS) int
