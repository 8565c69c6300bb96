package bbcode

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTable(t *testing.T) *tagTable {
	t.Helper()
	table, err := compile(DefaultRegistry())
	require.NoError(t, err)
	return table
}

func mustTokenize(t *testing.T, table *tagTable, input string) []token {
	t.Helper()
	tokens, err := table.tokenize(input, 0)
	require.NoError(t, err)
	return tokens
}

func TestTokenize_EmptyInput(t *testing.T) {
	tokens := mustTokenize(t, defaultTable(t), "")
	assert.Empty(t, tokens)
}

func TestTokenize_PlainText(t *testing.T) {
	tokens := mustTokenize(t, defaultTable(t), "Hello world")
	require.Len(t, tokens, 1)
	assert.Equal(t, tokenText, tokens[0].typ)
	assert.Equal(t, "Hello world", tokens[0].text)
}

func TestTokenize_EscapesMarkupAndStrayBrackets(t *testing.T) {
	tokens := mustTokenize(t, defaultTable(t), "<a>[x] a[1]")
	require.Len(t, tokens, 1)
	assert.Equal(t, "&lt;a&gt;&#91;x&#93; a&#91;1&#93;", tokens[0].text)
}

func TestTokenize_SimpleTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType tokenType
		wantName string
	}{
		{"open", "[b]", tokenOpen, "b"},
		{"open uppercase", "[B]", tokenOpen, "b"},
		{"open mixed case", "[Quote]", tokenOpen, "quote"},
		{"close", "[/b]", tokenClose, "b"},
		{"close uppercase", "[/URL]", tokenClose, "url"},
		{"alias", "[link]", tokenOpen, "link"},
		{"root tag", "[bbcode]", tokenOpen, "bbcode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mustTokenize(t, defaultTable(t), tt.input)
			require.Len(t, tokens, 1)
			assert.Equal(t, tt.wantType, tokens[0].typ)
			assert.Equal(t, tt.wantName, tokens[0].name)
			assert.Equal(t, tt.input, tokens[0].text)
		})
	}
}

func TestTokenize_NotATag(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown name", "[foo]", "&#91;foo&#93;"},
		{"prefix of longer name", "[bx]", "&#91;bx&#93;"},
		{"unterminated", "[b", "&#91;b"},
		{"unterminated params", "[color=red", "&#91;color=red"},
		{"close with params", "[/b x]", "&#91;/b x&#93;"},
		{"empty", "[]", "&#91;&#93;"},
		{"star", "[*]", "&#91;*&#93;"},
		{"tab after name", "[b\t]", "&#91;b\t&#93;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mustTokenize(t, defaultTable(t), tt.input)
			require.Len(t, tokens, 1)
			assert.Equal(t, tokenText, tokens[0].typ)
			assert.Equal(t, tt.want, tokens[0].text)
		})
	}
}

func TestTokenize_Parameters(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantParams string
	}{
		{"no params", "[color]", ""},
		{"equals value", "[color=red]", "=red"},
		{"key value list", "[quote author=bob date=1]", " author=bob date=1"},
		{"bare space", "[b ]", " "},
		{"markup escaped", "[color=<b>]", "=&lt;b&gt;"},
		{"open bracket escaped", "[url=a[b]", "=a&#91;b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mustTokenize(t, defaultTable(t), tt.input)
			require.Len(t, tokens, 1)
			assert.Equal(t, tokenOpen, tokens[0].typ)
			assert.Equal(t, tt.wantParams, tokens[0].params)
		})
	}
}

func TestTokenize_OpenAndClose(t *testing.T) {
	tokens := mustTokenize(t, defaultTable(t), "[b]content[/b]")
	require.Len(t, tokens, 3)

	assert.Equal(t, tokenOpen, tokens[0].typ)
	assert.Equal(t, "b", tokens[0].name)
	assert.Equal(t, 0, tokens[0].pos)

	assert.Equal(t, tokenText, tokens[1].typ)
	assert.Equal(t, "content", tokens[1].text)
	assert.Equal(t, 3, tokens[1].pos)

	assert.Equal(t, tokenClose, tokens[2].typ)
	assert.Equal(t, "b", tokens[2].name)
	assert.Equal(t, 10, tokens[2].pos)
}

func TestTokenize_NoParseFolding(t *testing.T) {
	t.Run("inner tags become text", func(t *testing.T) {
		tokens := mustTokenize(t, defaultTable(t), "[code][b]x[/b][/code]")
		require.Len(t, tokens, 3)
		assert.Equal(t, tokenOpen, tokens[0].typ)
		assert.Equal(t, tokenText, tokens[1].typ)
		assert.Equal(t, "&#91;b&#93;x&#91;/b&#93;", tokens[1].text)
		assert.Equal(t, tokenClose, tokens[2].typ)
	})

	t.Run("first close ends the region", func(t *testing.T) {
		tokens := mustTokenize(t, defaultTable(t), "[code][code]x[/code][/code]")
		require.Len(t, tokens, 4)
		assert.Equal(t, "&#91;code&#93;x", tokens[1].text)
		assert.Equal(t, tokenClose, tokens[2].typ)
		assert.Equal(t, tokenClose, tokens[3].typ)
	})

	t.Run("close matched case-insensitively", func(t *testing.T) {
		tokens := mustTokenize(t, defaultTable(t), "[code][i]x[/CODE]")
		require.Len(t, tokens, 3)
		assert.Equal(t, "&#91;i&#93;x", tokens[1].text)
	})

	t.Run("empty region", func(t *testing.T) {
		tokens := mustTokenize(t, defaultTable(t), "[noparse][/noparse]")
		require.Len(t, tokens, 2)
	})

	t.Run("unclosed region left alone", func(t *testing.T) {
		tokens := mustTokenize(t, defaultTable(t), "[code][b]x[/b]")
		require.Len(t, tokens, 4)
		assert.Equal(t, tokenOpen, tokens[1].typ)
		assert.Equal(t, "b", tokens[1].name)
	})

	t.Run("adjacent regions", func(t *testing.T) {
		tokens := mustTokenize(t, defaultTable(t), "[code][b][/code][php][i][/php]")
		require.Len(t, tokens, 6)
		assert.Equal(t, "&#91;b&#93;", tokens[1].text)
		assert.Equal(t, "&#91;i&#93;", tokens[4].text)
	})
}

func TestTokenize_MaxTags(t *testing.T) {
	table := defaultTable(t)

	_, err := table.tokenize(strings.Repeat("[b]x[/b]", 10), 10)
	require.NoError(t, err)

	_, err = table.tokenize(strings.Repeat("[b]x[/b]", 11), 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLimitExceeded))

	// Tags inside a no-parse region still count
	_, err = table.tokenize("[code]"+strings.Repeat("[i]", 10)+"[/code]", 10)
	assert.True(t, errors.Is(err, ErrLimitExceeded))
}

func TestTokenize_UnclosedParamsStayText(t *testing.T) {
	tokens := mustTokenize(t, defaultTable(t), "[b=x[i]y[/i][url=z")
	require.Len(t, tokens, 4)
	assert.Equal(t, tokenOpen, tokens[0].typ)
	assert.Equal(t, "b", tokens[0].name)
	assert.Equal(t, "=x&#91;i", tokens[0].params)
	assert.Equal(t, tokenText, tokens[1].typ)
	assert.Equal(t, tokenClose, tokens[2].typ)
	assert.Equal(t, tokenText, tokens[3].typ)
	assert.Equal(t, "&#91;url=z", tokens[3].text)
}

func TestNextCloseIndex(t *testing.T) {
	tokens := mustTokenize(t, defaultTable(t), "[b][i][b]x[/b][/i][/b][u]")
	assert.Equal(t, []int{4, 5, 4, -1, -1, -1, -1, -1}, nextCloseIndex(tokens))
}

// Adversarial inputs must tokenize in linear time. The sizes make a
// quadratic scan take seconds.
func TestTokenize_LinearOnAdversarialInput(t *testing.T) {
	table := defaultTable(t)

	tests := []struct {
		name  string
		input string
	}{
		{"unclosed no-parse opens", strings.Repeat("[code]", 200000)},
		{"unclosed parameters", strings.Repeat("[b=", 400000)},
		{"unclosed parameters with spaces", strings.Repeat("[quote a", 200000)},
		{"mixed no-parse opens", strings.Repeat("[code][php][noparse]", 70000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			_, err := table.tokenize(tt.input, 0)
			require.NoError(t, err)
			assert.Less(t, time.Since(start), 2*time.Second)
		})
	}
}
