// Package loader provides the OS-backed file-content provider required by
// the evaluator's "load" built-in (§6 "File input"): the evaluator only
// requires a function from name to an opaque SOURCE value, and this is the
// concrete mapping the command-line driver wires in.
package loader

import (
	"os"

	"github.com/nublang/nub/lang/machine"
)

// FS reads name from the local filesystem and wraps its full contents as a
// SOURCE value. The release hook is nil: the whole buffer is read up front,
// so there is no descriptor or mapping to close when the last reference
// drops.
func FS(name string) (machine.Source, error) {
	buf, err := os.ReadFile(name)
	if err != nil {
		return machine.Source{}, err
	}
	return machine.NewSource(name, string(buf), nil), nil
}
