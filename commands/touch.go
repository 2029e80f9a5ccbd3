package commands

import (
	"fmt"

	"github.com/clinterp/clinterp/core/vos"
)

// Touch implements the touch verb: create an empty file with mode 0666,
// truncating any existing content. Failures come from the open call and
// are reported as "open error".
func Touch(virtOS vos.VOS) int {
	args := virtOS.Args()
	if len(args) < 2 {
		fmt.Fprintln(virtOS.Stderr(), "touch: missing operand")
		return 1
	}

	fd, err := virtOS.Create(args[1])
	if err != nil {
		fmt.Fprintf(virtOS.Stderr(), "open error: %v\n", err)
		return 1
	}
	fd.Close()
	return 0
}

var _ ProcessFunc = Touch

func init() {
	addCmd("touch", Touch)
}
