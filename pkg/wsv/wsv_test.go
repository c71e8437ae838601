package wsv_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shapestone/shape-wsv/pkg/wsv"
)

func TestParse(t *testing.T) {
	records, err := wsv.Parse("name age\nAlice 30\nBob 25\n")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if age, _ := records[0].Get("age"); age != "30" {
		t.Errorf("first record age = %q, want 30", age)
	}
}

func TestParseReader(t *testing.T) {
	records, err := wsv.ParseReader(strings.NewReader("k v\nx 1\n"))
	if err != nil {
		t.Fatalf("ParseReader() error: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"well-formed", "a b\n1 2\n", true},
		{"quoted fields", `a b` + "\n" + `"1 2" ""` + "\n", true},
		{"empty input", "", true},
		{"unterminated quote", "a b\n\"broken\n", false},
		{"duplicate header", "a a\n1 2\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wsv.Validate(tt.input)
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestValidate_ErrorClasses(t *testing.T) {
	if err := wsv.Validate("a b\n\"broken\n"); !errors.Is(err, wsv.ErrUnterminatedQuote) {
		t.Errorf("error = %v, want ErrUnterminatedQuote", err)
	}
}

func TestFormat(t *testing.T) {
	if wsv.Format() != "WSV" {
		t.Errorf("Format() = %q, want WSV", wsv.Format())
	}
}
