package ui

import (
	"fmt"
	"unicode"
)

const maxPromptInput = 6

// Prompt is the pattern selection request: an enumerated list of names plus
// the text typed so far. It knows nothing about ebiten so it can be driven
// from tests.
type Prompt struct {
	open  bool
	names []string
	input []rune
}

// Open shows the list and clears any previous input.
func (p *Prompt) Open(names []string) {
	p.open = true
	p.names = append(p.names[:0], names...)
	p.input = p.input[:0]
}

// IsOpen reports whether the prompt is waiting for an answer.
func (p *Prompt) IsOpen() bool { return p.open }

// Type appends r when it can be part of an integer answer.
func (p *Prompt) Type(r rune) {
	if !p.open || len(p.input) >= maxPromptInput {
		return
	}
	if unicode.IsDigit(r) || (r == '-' && len(p.input) == 0) {
		p.input = append(p.input, r)
	}
}

// Backspace removes the last typed rune.
func (p *Prompt) Backspace() {
	if len(p.input) > 0 {
		p.input = p.input[:len(p.input)-1]
	}
}

// Submit closes the prompt and returns the typed answer.
func (p *Prompt) Submit() string {
	answer := string(p.input)
	p.Cancel()
	return answer
}

// Cancel closes the prompt without an answer.
func (p *Prompt) Cancel() {
	p.open = false
	p.input = p.input[:0]
}

// Input returns the answer typed so far.
func (p *Prompt) Input() string { return string(p.input) }

// Lines renders the prompt as text rows.
func (p *Prompt) Lines() []string {
	lines := make([]string, 0, len(p.names)+3)
	lines = append(lines, "-1 : Empty Grid")
	for i, name := range p.names {
		lines = append(lines, fmt.Sprintf("%2d : %s", i, name))
	}
	lines = append(lines, "", fmt.Sprintf("Choose pattern (index no. of pattern): %s_", string(p.input)))
	return lines
}
