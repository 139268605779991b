// Package prelude embeds the bootstrap vocabulary that runs in the initial
// global environment before any user source or argv is consulted (§6
// "Embedded prelude").
package prelude

import (
	_ "embed"

	"github.com/nublang/nub/lang/machine"
)

//go:embed prelude.nub
var source string

// Name is the prelude SOURCE value's display name (§6).
const Name = "(builtin init)"

// Source wraps the embedded prelude text as a SOURCE value.
func Source() machine.Source {
	return machine.NewSource(Name, source, nil)
}
