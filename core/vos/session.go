package vos

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/afero"
)

// DefaultRemoveUtility is the binary spawned for recursive removal when
// the configuration doesn't name one.
const DefaultRemoveUtility = "/bin/rm"

// Session holds the state shared by every command in one interpreter
// session. The working directory is explicit session state; the real
// process working directory is never changed.
type Session struct {
	fsys          afero.Fs
	cwd           string
	removeUtility string
	spawner       Spawner

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// SessionConfig holds the optional settings for NewSession.
type SessionConfig struct {
	// Dir is the initial working directory, "/" if empty. Must be
	// absolute.
	Dir string
	// RemoveUtility overrides DefaultRemoveUtility.
	RemoveUtility string
	// Spawner overrides the default ExecSpawner.
	Spawner Spawner

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewSession creates a session over the given filesystem.
func NewSession(fsys afero.Fs, cfg SessionConfig) *Session {
	if cfg.Dir == "" {
		cfg.Dir = "/"
	}
	if cfg.RemoveUtility == "" {
		cfg.RemoveUtility = DefaultRemoveUtility
	}
	if cfg.Spawner == nil {
		cfg.Spawner = ExecSpawner{}
	}
	if cfg.Stdin == nil {
		cfg.Stdin = strings.NewReader("")
	}
	if cfg.Stdout == nil {
		cfg.Stdout = io.Discard
	}
	if cfg.Stderr == nil {
		cfg.Stderr = io.Discard
	}

	return &Session{
		fsys:          fsys,
		cwd:           filepath.Clean(cfg.Dir),
		removeUtility: cfg.RemoveUtility,
		spawner:       cfg.Spawner,
		stdin:         cfg.Stdin,
		stdout:        cfg.Stdout,
		stderr:        cfg.Stderr,
	}
}

// resolve makes name absolute against the session working directory.
func (s *Session) resolve(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(s.cwd, name)
}

func (s *Session) Getwd() string {
	return s.cwd
}

func (s *Session) Chdir(dir string) error {
	resolved := s.resolve(dir)
	info, err := s.fsys.Stat(resolved)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	}
	s.cwd = resolved
	return nil
}

func (s *Session) Mkdir(name string, perm os.FileMode) error {
	return s.fsys.Mkdir(s.resolve(name), perm)
}

func (s *Session) Create(name string) (afero.File, error) {
	return s.fsys.Create(s.resolve(name))
}

func (s *Session) Stat(name string) (os.FileInfo, error) {
	return s.fsys.Stat(s.resolve(name))
}

func (s *Session) Stdin() io.Reader {
	return s.stdin
}

func (s *Session) Stdout() io.Writer {
	return s.stdout
}

func (s *Session) Stderr() io.Writer {
	return s.stderr
}

func (s *Session) RemoveUtility() string {
	return s.removeUtility
}

func (s *Session) SpawnWait(name string, args ...string) error {
	return s.spawner.SpawnWait(SpawnAttr{
		Dir:    s.cwd,
		Stdout: s.stdout,
		Stderr: s.stderr,
	}, name, args...)
}

// StartProcess returns the view of the session a single command sees.
// Working-directory changes made by the command stay visible to the
// whole session, matching shell semantics for cd.
func (s *Session) StartProcess(argv []string) VOS {
	return &proc{Session: s, argv: argv}
}

type proc struct {
	*Session
	argv []string
}

func (p *proc) Args() []string {
	return p.argv
}

var _ VOS = (*proc)(nil)
