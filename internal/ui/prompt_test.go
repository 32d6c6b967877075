package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptLifecycle(t *testing.T) {
	var p Prompt
	assert.False(t, p.IsOpen())

	p.Type('1')
	assert.Empty(t, p.Input(), "typing into a closed prompt is ignored")

	p.Open([]string{"glider", "blinker"})
	assert.True(t, p.IsOpen())
	for _, r := range "1x2" {
		p.Type(r)
	}
	assert.Equal(t, "12", p.Input())
	p.Backspace()
	assert.Equal(t, "1", p.Input())

	assert.Equal(t, "1", p.Submit())
	assert.False(t, p.IsOpen())
	assert.Empty(t, p.Input())
}

func TestPromptMinusOnlyLeading(t *testing.T) {
	var p Prompt
	p.Open(nil)
	for _, r := range "-1-" {
		p.Type(r)
	}
	assert.Equal(t, "-1", p.Input())
}

func TestPromptInputIsBounded(t *testing.T) {
	var p Prompt
	p.Open(nil)
	for i := 0; i < 20; i++ {
		p.Type('9')
	}
	assert.Len(t, p.Input(), maxPromptInput)
}

func TestPromptReopenClearsInput(t *testing.T) {
	var p Prompt
	p.Open([]string{"a"})
	p.Type('3')
	p.Cancel()
	assert.False(t, p.IsOpen())

	p.Open([]string{"a"})
	assert.Empty(t, p.Input())
	p.Backspace()
	assert.Empty(t, p.Input())
}

func TestPromptLines(t *testing.T) {
	var p Prompt
	p.Open([]string{"glider", "blinker"})
	p.Type('1')
	assert.Equal(t, []string{
		"-1 : Empty Grid",
		" 0 : glider",
		" 1 : blinker",
		"",
		"Choose pattern (index no. of pattern): 1_",
	}, p.Lines())
}
