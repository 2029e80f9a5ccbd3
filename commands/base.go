package commands

import (
	"sort"

	"github.com/clinterp/clinterp/core/vos"
)

// ProcessFunc is the entry point of a builtin command.
type ProcessFunc = vos.ProcessFunc

// AllCommands holds every registered builtin keyed by verb.
var AllCommands = make(map[string]ProcessFunc)

func addCmd(verb string, cmd ProcessFunc) {
	AllCommands[verb] = cmd
}

// Lookup returns the builtin for a verb. Verbs outside the supported
// set return nil; the interpreter ignores them silently.
func Lookup(verb string) ProcessFunc {
	return AllCommands[verb]
}

// Verbs returns the sorted list of supported verbs.
func Verbs() []string {
	var verbs []string
	for v := range AllCommands {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)
	return verbs
}
