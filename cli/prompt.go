package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Prompter asks interactive questions on the terminal. Reader and
// writer are fields so tests can drive it.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter() *Prompter {
	return &Prompter{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

func NewPrompterFrom(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// AskInt asks for a number, returning def on empty or invalid input.
func (p *Prompter) AskInt(label string, def int) int {
	fmt.Fprintf(p.out, "%s [%d]: ", label, def)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintf(p.out, "⚠️ Not a number, using %d\n", def)
		return def
	}
	return n
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(label string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(p.out, "%s [%s]: ", label, hint)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "o", "oui":
		return true
	case "n", "no", "non":
		return false
	default:
		return def
	}
}

// AskChoice presents numbered options and returns the chosen index,
// def on empty or invalid input.
func (p *Prompter) AskChoice(label string, options []string, def int) int {
	fmt.Fprintln(p.out, label)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, opt)
	}
	choice := p.AskInt("Choice", def+1)
	if choice < 1 || choice > len(options) {
		return def
	}
	return choice - 1
}
