package tokenizer

import (
	"errors"
	"reflect"
	"testing"
)

// TestTokens_Basic tests splitting of well-formed lines into raw tokens.
func TestTokens_Basic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single bare field",
			input:    "abc",
			expected: []string{"abc"},
		},
		{
			name:     "multiple bare fields",
			input:    "a b c",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "runs of whitespace separate fields",
			input:    "a \t  b\t\tc",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "leading and trailing whitespace ignored",
			input:    "  a b  ",
			expected: []string{"a", "b"},
		},
		{
			name:     "quoted field keeps quotes in raw token",
			input:    `"hello world"`,
			expected: []string{`"hello world"`},
		},
		{
			name:     "quoted and bare fields mixed",
			input:    `a "b c" d`,
			expected: []string{"a", `"b c"`, "d"},
		},
		{
			name:     "quoted empty field is emitted",
			input:    `"" x`,
			expected: []string{`""`, "x"},
		},
		{
			name:     "doubled quotes stay doubled in raw token",
			input:    `"""special"" data" is ok`,
			expected: []string{`"""special"" data"`, "is", "ok"},
		},
		{
			name:     "hash is ordinary inside fields",
			input:    `more #data #ok`,
			expected: []string{"more", "#data", "#ok"},
		},
		{
			name:     "quoted hash",
			input:    `"#more" data`,
			expected: []string{`"#more"`, "data"},
		},
		{
			name:     "empty line yields no tokens",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace-only line yields no tokens",
			input:    " \t ",
			expected: nil,
		},
		{
			name:     "quoted field at end of line",
			input:    `a "b"`,
			expected: []string{"a", `"b"`},
		},
		{
			name:     "quote closed right at end of line after escape",
			input:    `"a"""`,
			expected: []string{`"a"""`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokens(tt.input)
			if err != nil {
				t.Fatalf("Tokens(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(tokens, tt.expected) {
				t.Errorf("Tokens(%q) = %#v, want %#v", tt.input, tokens, tt.expected)
			}
		})
	}
}

// TestTokens_Errors tests that malformed quoting is rejected.
func TestTokens_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{
			name:  "unterminated quote",
			input: `"abc`,
			want:  ErrUnterminatedQuote,
		},
		{
			name:  "unterminated quote with internal escape",
			input: `"a""`,
			want:  ErrUnterminatedQuote,
		},
		{
			name:  "lone quote",
			input: `"`,
			want:  ErrUnterminatedQuote,
		},
		{
			name:  "quote inside bare field",
			input: `ab"cd`,
			want:  ErrBareQuote,
		},
		{
			name:  "content after closing quote",
			input: `"ab"cd`,
			want:  ErrBareQuote,
		},
		{
			name:  "unterminated in later field",
			input: `ok "broken`,
			want:  ErrUnterminatedQuote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokens(tt.input)
			if err == nil {
				t.Fatalf("Tokens(%q) = %#v, want error", tt.input, tokens)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Tokens(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

// TestUnquote tests conversion of raw tokens into field values.
func TestUnquote(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{"bare token unchanged", "abc", "abc"},
		{"quoted token stripped", `"abc"`, "abc"},
		{"quoted empty", `""`, ""},
		{"quoted whitespace preserved", `"a b  c"`, "a b  c"},
		{"doubled quotes collapse", `"""special"" data"`, `"special" data`},
		{"only escaped quote", `""""`, `"`},
		{"empty token tolerated", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unquote(tt.token); got != tt.expected {
				t.Errorf("Unquote(%q) = %q, want %q", tt.token, got, tt.expected)
			}
		})
	}
}

// TestSplitLine tests tokenization and unquoting together.
func TestSplitLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "mixed bare and quoted",
			input:    `"" "data1 data2" "data3"`,
			expected: []string{"", "data1 data2", "data3"},
		},
		{
			name:     "escaped quotes",
			input:    `"""special"" data" is ok`,
			expected: []string{`"special" data`, "is", "ok"},
		},
		{
			name:     "tabs as separators",
			input:    "1st\t2nd     3rd",
			expected: []string{"1st", "2nd", "3rd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := SplitLine(tt.input)
			if err != nil {
				t.Fatalf("SplitLine(%q) error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(fields, tt.expected) {
				t.Errorf("SplitLine(%q) = %#v, want %#v", tt.input, fields, tt.expected)
			}
		})
	}

	t.Run("propagates tokenizer errors", func(t *testing.T) {
		if _, err := SplitLine(`a "b`); !errors.Is(err, ErrUnterminatedQuote) {
			t.Errorf("SplitLine error = %v, want ErrUnterminatedQuote", err)
		}
	})
}
