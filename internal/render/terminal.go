package render

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Stdout returns a writer for standard output that handles ANSI escapes on
// Windows consoles too, and whether colour should be used on it.
func Stdout() (io.Writer, bool) {
	return colorable.NewColorableStdout(), UseColor(os.Stdout)
}

// UseColor reports whether f is an interactive terminal and NO_COLOR is unset.
func UseColor(f *os.File) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
