package terminal

import (
	"fmt"
	"strings"
)

// prompter implements input.Prompter on the shell's own input and output.
type prompter struct {
	shell *Shell
}

func (p prompter) Confirm(message string) bool {
	line, ok := p.shell.ask(message + " [y/N]: ")
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func (p prompter) Notify(message string) {
	fmt.Fprintln(p.shell.out, message)
}
