package core

import (
	"bytes"
	"errors"
	"testing"

	"github.com/clinterp/clinterp/core/config"
	"github.com/clinterp/clinterp/core/vos"
	"github.com/clinterp/clinterp/core/vos/vostest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type interpFixture struct {
	interp  *Interpreter
	fsys    afero.Fs
	spawner *vostest.FakeSpawner
	out     *bytes.Buffer
}

func newInterpFixture(t *testing.T) *interpFixture {
	t.Helper()

	fsys := afero.NewMemMapFs()
	spawner := &vostest.FakeSpawner{}
	out := &bytes.Buffer{}

	session := vos.NewSession(fsys, vos.SessionConfig{
		Spawner: spawner,
		Stdout:  out,
		Stderr:  out,
	})

	return &interpFixture{
		interp:  &Interpreter{Session: session},
		fsys:    fsys,
		spawner: spawner,
		out:     out,
	}
}

func TestExecute_mkdir_then_touch(t *testing.T) {
	f := newInterpFixture(t)

	f.interp.Execute("mkdir foo;touch foo/bar.txt")

	assert.Empty(t, f.out.String())

	exists, err := afero.DirExists(f.fsys, "/foo")
	require.NoError(t, err)
	assert.True(t, exists)

	contents, err := afero.ReadFile(f.fsys, "/foo/bar.txt")
	require.NoError(t, err)
	assert.Empty(t, contents)
}

func TestExecute_cd_persists_across_fragments(t *testing.T) {
	f := newInterpFixture(t)

	f.interp.Execute("mkdir a;cd a;touch b.txt")

	assert.Empty(t, f.out.String())
	assert.Equal(t, "/a", f.interp.Session.Getwd())

	exists, err := afero.Exists(f.fsys, "/a/b.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExecute_cd_failure_leaves_cwd(t *testing.T) {
	f := newInterpFixture(t)

	f.interp.Execute("cd /nonexistent-path-xyz")

	assert.Contains(t, f.out.String(), "cd error:")
	assert.Equal(t, "/", f.interp.Session.Getwd())
}

func TestExecute_unknown_verb_is_silent(t *testing.T) {
	f := newInterpFixture(t)

	f.interp.Execute("unknowncmd arg1")

	assert.Empty(t, f.out.String())
	assert.Empty(t, f.spawner.Calls)
}

func TestExecute_quotes_are_retained(t *testing.T) {
	f := newInterpFixture(t)

	// Tokenizes to ["mkdir", `"my dir"`]; the quoted space doesn't
	// split and the literal `"my dir"` is the operand that gets
	// created, quotes included.
	f.interp.Execute(`mkdir "my dir"`)

	exists, err := afero.DirExists(f.fsys, `/"my dir"`)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExecute_rm_syntax_error(t *testing.T) {
	f := newInterpFixture(t)

	f.interp.Execute("rm -rf")

	assert.Equal(t, "Syntax error for rm -rf\n", f.out.String())
	assert.Empty(t, f.spawner.Calls)
}

func TestExecute_rm_spawns_and_continues(t *testing.T) {
	f := newInterpFixture(t)

	f.interp.Execute("rm -rf target;touch after.txt")

	require.Len(t, f.spawner.Calls, 1)
	assert.Equal(t, []string{vos.DefaultRemoveUtility, "-rf", "target"}, f.spawner.Calls[0])

	exists, err := afero.Exists(f.fsys, "/after.txt")
	require.NoError(t, err)
	assert.True(t, exists, "the fragment after rm still runs")
}

func TestExecute_error_does_not_stop_the_line(t *testing.T) {
	f := newInterpFixture(t)

	f.interp.Execute("cd /nope;mkdir ok")

	assert.Contains(t, f.out.String(), "cd error:")

	exists, err := afero.DirExists(f.fsys, "/ok")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExecute_empty_fragments_are_noops(t *testing.T) {
	f := newInterpFixture(t)

	f.interp.Execute("")
	f.interp.Execute(";;")
	f.interp.Execute("   ;   ")

	assert.Empty(t, f.out.String())
}

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer) {
	t.Helper()

	f := newInterpFixture(t)
	return &Shell{
		Interpreter:   *f.interp,
		configuration: config.Default(),
		stdout:        f.out,
		stderr:        f.out,
	}, f.out
}

func TestReadError_reported_on_stderr(t *testing.T) {
	stderr := &bytes.Buffer{}
	sh := &Shell{
		configuration: config.Default(),
		stdout:        &bytes.Buffer{},
		stderr:        stderr,
	}

	sh.readError(errors.New("input gone"))

	assert.Equal(t, "Error readline: input gone\n", stderr.String())
}

func TestHandleLine_exit(t *testing.T) {
	sh, out := newTestShell(t)

	done := sh.handleLine("exit")
	assert.True(t, done)
	assert.Equal(t, config.Default().Farewell+"\n", out.String())
}

func TestHandleLine_exit_must_match_exactly(t *testing.T) {
	cases := []string{"exit now", " exit", "exit ", "exit;exit", "EXIT"}

	for _, line := range cases {
		t.Run(line, func(t *testing.T) {
			sh, out := newTestShell(t)

			done := sh.handleLine(line)
			assert.False(t, done)
			assert.NotContains(t, out.String(), config.Default().Farewell)
		})
	}
}
