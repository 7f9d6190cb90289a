// Package console provides the colored terminal messages and the
// interactive confirmation capability used by the CLI commands.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset      = "\x1b[0m"
	ansiBoldRed    = "\x1b[1;31m"
	ansiBoldGreen  = "\x1b[1;32m"
	ansiBoldYellow = "\x1b[1;33m"
)

// Printer writes prefixed status messages, coloring the prefix when
// the destination is a terminal.
type Printer struct {
	out      io.Writer
	colorize bool
}

// NewPrinter builds a printer for out, detecting terminal support.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, colorize: shouldColorize(out)}
}

// Done prints a success message with a green DONE: prefix.
func (p *Printer) Done(format string, args ...any) {
	p.print(ansiBoldGreen, "DONE:", format, args...)
}

// Warning prints a warning with a yellow WARNING: prefix.
func (p *Printer) Warning(format string, args ...any) {
	p.print(ansiBoldYellow, "WARNING:", format, args...)
}

// Error prints an error with a red ERROR: prefix.
func (p *Printer) Error(format string, args ...any) {
	p.print(ansiBoldRed, "ERROR:", format, args...)
}

func (p *Printer) print(color, prefix, format string, args ...any) {
	if p.colorize {
		prefix = color + prefix + ansiReset
	}
	fmt.Fprintf(p.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
