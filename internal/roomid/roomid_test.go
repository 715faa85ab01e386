package roomid

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	code := Generate()

	if len(code) != Length {
		t.Errorf("expected %d characters, got %d", Length, len(code))
	}
	if err := Validate(code); err != nil {
		t.Errorf("generated code failed validation: %v", err)
	}
}

func TestGenerateUnique(t *testing.T) {
	codes := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := Generate()
		if codes[code] {
			t.Errorf("duplicate code generated: %s", code)
		}
		codes[code] = true
	}
}

func TestGenerateWithRandSource(t *testing.T) {
	g := NewGenerator(fixedSource{})
	code := g.Generate()
	if code != strings.Repeat("0", Length) {
		t.Errorf("expected all-zero code from fixed source, got %s", code)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc123", "ABC123"},
		{" ABC123 ", "ABC123"},
		{"ABCO23", "ABC023"},
		{"ABCI23", "ABC123"},
		{"abcl23", "ABC123"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("ABC123"); err != nil {
		t.Errorf("expected valid code, got %v", err)
	}
	if err := Validate("ABC12"); err == nil {
		t.Error("expected length error for short code")
	}
	if err := Validate("ABC12O"); err == nil {
		t.Error("expected alphabet error for O")
	}
}

type fixedSource struct{}

func (fixedSource) IntN(int) int { return 0 }
