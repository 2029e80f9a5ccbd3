package commands

import (
	"fmt"

	"github.com/clinterp/clinterp/core/vos"
)

// Rm implements the `rm -rf` verb: recursively delete one path by
// spawning the external removal utility and waiting for it to exit.
//
// Only the literal flag token "-rf" is supported. A bare "rm" or any
// other flag spelling ("-r", "-fr", "-r -f") is ignored exactly like
// an unknown verb.
func Rm(virtOS vos.VOS) int {
	args := virtOS.Args()
	if len(args) < 2 || args[1] != "-rf" {
		return 0
	}
	if len(args) < 3 {
		fmt.Fprintln(virtOS.Stderr(), "Syntax error for rm -rf")
		return 1
	}

	// The child inherits the session working directory and stdio; its
	// exit status is not inspected.
	if err := virtOS.SpawnWait(virtOS.RemoveUtility(), "-rf", args[2]); err != nil {
		fmt.Fprintf(virtOS.Stderr(), "spawn error: %v\n", err)
		return 1
	}
	return 0
}

var _ ProcessFunc = Rm

func init() {
	addCmd("rm", Rm)
}
