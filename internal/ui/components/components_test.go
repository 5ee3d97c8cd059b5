package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestScoreBar_Fraction(t *testing.T) {
	assert.Equal(t, 0.0, NewScoreBar("逻辑力", 1, 40).Fraction())
	assert.Equal(t, 0.5, NewScoreBar("逻辑力", 3, 40).Fraction())
	assert.Equal(t, 1.0, NewScoreBar("逻辑力", 5, 40).Fraction())
	assert.Equal(t, 1.0, NewScoreBar("逻辑力", 9, 40).Fraction())
	assert.Equal(t, 0.25, NewXPBar(25, 100, 40).Fraction())
	assert.Equal(t, 0.0, NewXPBar(0, 0, 40).Fraction())
}

func TestScoreBar_View(t *testing.T) {
	assert.Contains(t, NewScoreBar("创造力", 3.5, 40).View(), "3.5")
	assert.Contains(t, NewXPBar(40, 120, 40).View(), "40/120")
}

func TestMessageInput(t *testing.T) {
	in := NewMessageInput("说点什么", 5)
	for _, r := range "你好呀朋友们" {
		in, _ = in.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	assert.Equal(t, 5, in.Len())
	assert.Equal(t, "你好呀朋友", in.Value())

	in.Reset()
	assert.Empty(t, in.Value())
}
