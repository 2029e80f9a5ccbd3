package commands

import (
	"fmt"

	"github.com/clinterp/clinterp/core/vos"
)

// Cd implements the cd verb: change the session working directory.
// The change is session state, visible to every later command.
func Cd(virtOS vos.VOS) int {
	args := virtOS.Args()
	if len(args) < 2 {
		fmt.Fprintln(virtOS.Stderr(), "cd: missing operand")
		return 1
	}

	if err := virtOS.Chdir(args[1]); err != nil {
		fmt.Fprintf(virtOS.Stderr(), "cd error: %v\n", err)
		return 1
	}
	return 0
}

var _ ProcessFunc = Cd

func init() {
	addCmd("cd", Cd)
}
