package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX_Empty(t *testing.T) {
	assert.Equal(t, "", EscapeLaTeX(""))
}

func TestEscapeLaTeX_PlainText(t *testing.T) {
	text := "Senior Software Engineer"
	assert.Equal(t, text, EscapeLaTeX(text))
}

func TestEscapeLaTeX_SpecialCharacters(t *testing.T) {
	assert.Equal(t, `improved revenue by 40\%`, EscapeLaTeX("improved revenue by 40%"))
	assert.Equal(t, `R\&D team`, EscapeLaTeX("R&D team"))
	assert.Equal(t, `saved \$2M annually`, EscapeLaTeX("saved $2M annually"))
	assert.Equal(t, `user\_name`, EscapeLaTeX("user_name"))
	assert.Equal(t, `C\# developer`, EscapeLaTeX("C# developer"))
}

func TestEscapeLaTeX_Backslash(t *testing.T) {
	assert.Equal(t, `path\textbackslash{}to`, EscapeLaTeX(`path\to`))
}

func TestEscapeLaTeX_Braces(t *testing.T) {
	assert.Equal(t, `\{json\}`, EscapeLaTeX("{json}"))
}
