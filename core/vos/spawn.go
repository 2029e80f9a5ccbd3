package vos

import (
	"io"
	"os/exec"
)

// Spawner launches an external process and blocks until it exits.
type Spawner interface {
	SpawnWait(attr SpawnAttr, name string, args ...string) error
}

// SpawnAttr carries the per-spawn settings for a child process.
type SpawnAttr struct {
	// Dir is the child's working directory.
	Dir string

	Stdout io.Writer
	Stderr io.Writer
}

// ExecSpawner runs real child processes via os/exec.
type ExecSpawner struct{}

func (ExecSpawner) SpawnWait(attr SpawnAttr, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = attr.Dir
	cmd.Stdout = attr.Stdout
	cmd.Stderr = attr.Stderr

	if err := cmd.Start(); err != nil {
		return err
	}

	// Exit status is discarded, the wait only keeps the parent from
	// running ahead of a live child.
	_ = cmd.Wait()
	return nil
}

var _ Spawner = ExecSpawner{}
