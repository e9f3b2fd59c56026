package cli

import (
	"io"
	"os"
)

// IsTerminal reports whether w writes to an interactive terminal.
// Buffers, pipes and regular files are not terminals.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isTerminal(int(f.Fd()))
}
