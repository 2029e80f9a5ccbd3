package commands

import (
	"fmt"

	"github.com/clinterp/clinterp/core/vos"
)

// Mkdir implements the mkdir verb: create one directory with mode 0777,
// subject to the umask.
func Mkdir(virtOS vos.VOS) int {
	args := virtOS.Args()
	if len(args) < 2 {
		fmt.Fprintln(virtOS.Stderr(), "mkdir: missing operand")
		return 1
	}

	if err := virtOS.Mkdir(args[1], 0777); err != nil {
		fmt.Fprintf(virtOS.Stderr(), "mkdir error: %v\n", err)
		return 1
	}
	return 0
}

var _ ProcessFunc = Mkdir

func init() {
	addCmd("mkdir", Mkdir)
}
