// Package vostest runs builtin commands against disposable in-memory
// sessions for testing.
package vostest

import (
	"bytes"
	"io"
	"strings"

	"github.com/clinterp/clinterp/core/vos"
	"github.com/spf13/afero"
)

// FakeSpawner records spawn requests instead of forking.
type FakeSpawner struct {
	// Calls holds one argv per spawn, utility name first.
	Calls [][]string
	// Dirs holds the working directory of each spawn.
	Dirs []string
	// Err, when set, is returned for every spawn.
	Err error
}

func (f *FakeSpawner) SpawnWait(attr vos.SpawnAttr, name string, args ...string) error {
	f.Calls = append(f.Calls, append([]string{name}, args...))
	f.Dirs = append(f.Dirs, attr.Dir)
	return f.Err
}

var _ vos.Spawner = (*FakeSpawner)(nil)

// Cmd is similar to exec.Cmd.
type Cmd struct {
	// Process function.
	Process vos.ProcessFunc
	// Process arguments, the first argument should be the process name.
	Argv []string
	// Fs backs the session's filesystem.
	Fs afero.Fs
	// Dir is the session working directory the command starts in.
	Dir string
	// Spawner receives the command's external spawns.
	Spawner *FakeSpawner

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	ExitStatus int

	session *vos.Session
}

// Command builds a Cmd over a fresh MemMapFs rooted at "/".
func Command(process vos.ProcessFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Process: process,
		Argv:    append([]string{name}, arg...),
		Fs:      afero.NewMemMapFs(),
		Dir:     "/",
		Spawner: &FakeSpawner{},
	}
}

// Session returns the session the command ran against; nil before Run.
func (c *Cmd) Session() *vos.Session {
	return c.session
}

// CombinedOutput runs the command and returns its combined stdout and
// stderr.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	err := c.Run()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Run executes the command and records its exit status.
func (c *Cmd) Run() error {
	if c.Stdin == nil {
		c.Stdin = strings.NewReader("")
	}

	c.session = vos.NewSession(c.Fs, vos.SessionConfig{
		Dir:     c.Dir,
		Spawner: c.Spawner,
		Stdin:   c.Stdin,
		Stdout:  c.Stdout,
		Stderr:  c.Stderr,
	})

	c.ExitStatus = c.Process(c.session.StartProcess(c.Argv))
	return nil
}
