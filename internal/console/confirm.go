package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks the user a yes/no question. Implementations block
// until an answer arrives. Only an explicit "n" declines; any other
// answer, including an empty line or EOF, accepts.
type Confirmer interface {
	Confirm(prompt string) bool
}

type readerConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConfirmer builds a Confirmer that prompts on out and reads one
// line from in.
func NewConfirmer(in io.Reader, out io.Writer) Confirmer {
	return &readerConfirmer{in: bufio.NewReader(in), out: out}
}

func (c *readerConfirmer) Confirm(prompt string) bool {
	fmt.Fprint(c.out, prompt)
	line, _ := c.in.ReadString('\n')
	return strings.ToLower(strings.TrimSpace(line)) != "n"
}
