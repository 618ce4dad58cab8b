package brainfuck

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	program, err := Parse(" + - > < . , [ ] \n")
	if err != nil {
		t.Fatal(err)
	}
	if str := program.String(); str != "+-><.,[]" {
		t.Fatalf("got %q", str)
	}
}

func TestParseIllegalRune(t *testing.T) {
	_, err := Parse("++a.")
	if !errors.Is(err, ErrIllegalInstruction) {
		t.Fatalf("got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	program, err := Parse("  \t\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(program) != 0 {
		t.Fatalf("got %v", program)
	}
}
