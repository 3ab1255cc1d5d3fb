package tuitest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "enter", Key("enter").String())
	assert.Equal(t, "ctrl+c", Key("ctrl+c").String())
	assert.Equal(t, tea.KeyRunes, Key("q").Type)
	assert.Equal(t, "q", Key("q").String())
}

func TestForm(t *testing.T) {
	msgs := Form("ab", "")
	assert.Len(t, msgs, 4)
	assert.Equal(t, Key("enter"), msgs[2])
	assert.Equal(t, Key("enter"), msgs[3])
}

func TestInOrder(t *testing.T) {
	assert.True(t, InOrder("1. Add\n2. Remove\n3. Display", "Add", "Remove", "Display"))
	assert.False(t, InOrder("1. Add\n2. Remove", "Remove", "Add"))
	assert.True(t, InOrder("anything"))
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "Apple", Plain("\x1b[1;32mApple\x1b[0m"))
}
