package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAskInt(t *testing.T) {
	var out bytes.Buffer

	p := NewPrompterFrom(strings.NewReader("25\n"), &out)
	assert.Equal(t, 25, p.AskInt("How many", 10))

	p = NewPrompterFrom(strings.NewReader("\n"), &out)
	assert.Equal(t, 10, p.AskInt("How many", 10))

	p = NewPrompterFrom(strings.NewReader("abc\n"), &out)
	assert.Equal(t, 10, p.AskInt("How many", 10))
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer

	p := NewPrompterFrom(strings.NewReader("y\n"), &out)
	assert.True(t, p.Confirm("Proceed", false))

	p = NewPrompterFrom(strings.NewReader("non\n"), &out)
	assert.False(t, p.Confirm("Proceed", true))

	p = NewPrompterFrom(strings.NewReader("\n"), &out)
	assert.True(t, p.Confirm("Proceed", true))
}

func TestAskChoice(t *testing.T) {
	var out bytes.Buffer

	p := NewPrompterFrom(strings.NewReader("2\n"), &out)
	assert.Equal(t, 1, p.AskChoice("Pick a source", []string{"local", "stock"}, 0))

	p = NewPrompterFrom(strings.NewReader("9\n"), &out)
	assert.Equal(t, 0, p.AskChoice("Pick a source", []string{"local", "stock"}, 0))
}
