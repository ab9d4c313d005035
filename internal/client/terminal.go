package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

// terminalPasswordReader prompts on out and reads from the terminal with echo
// disabled. When in is not a terminal a single line is read instead.
type terminalPasswordReader struct {
	in  *os.File
	out io.Writer

	lines *bufio.Reader
}

func (r *terminalPasswordReader) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	fd := int(r.in.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(r.out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}

	if r.lines == nil {
		r.lines = bufio.NewReader(r.in)
	}
	line, err := r.lines.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
