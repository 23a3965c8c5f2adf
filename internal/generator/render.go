package generator

import (
	"os"
	"regexp"

	"github.com/mattn/go-isatty"
)

var boldRe = regexp.MustCompile(`\*\*(.*?)\*\*`)

// RenderEmphasis turns **bold** into terminal bold when tty is true, and
// strips the markers otherwise.
func RenderEmphasis(text string, tty bool) string {
	if tty {
		return boldRe.ReplaceAllString(text, "\x1b[1m$1\x1b[0m")
	}
	return boldRe.ReplaceAllString(text, "$1")
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
