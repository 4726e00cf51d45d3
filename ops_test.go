package calc

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		sym   string
		prec  int8
		assoc Assoc
	}{
		{"+", 2, Left},
		{"-", 2, Left},
		{"*", 3, Left},
		{"/", 3, Left},
		{"^", 4, Right},
	}
	for _, c := range cases {
		op, err := Lookup(c.sym)
		if err != nil {
			t.Errorf("%q: unexpected error %v", c.sym, err)
			continue
		}
		if op.Symbol != c.sym || op.Prec != c.prec || op.Assoc != c.assoc {
			t.Errorf("%q: want {%s %d %v}, got %+v", c.sym, c.sym, c.prec, c.assoc, op)
		}
		if !IsOperator(c.sym) {
			t.Errorf("%q is not an operator", c.sym)
		}
	}
	for _, sym := range []string{"", "(", ")", "%", "1", "++", "×"} {
		if IsOperator(sym) {
			t.Errorf("%q is an operator", sym)
		}
		_, err := Lookup(sym)
		if !errors.Is(err, ErrUnknownOperator) {
			t.Errorf("%q: want unknown operator error, got %v", sym, err)
		}
		var oe *OperatorError
		if !errors.As(err, &oe) || oe.Operator != sym || oe.Pos() != -1 {
			t.Errorf("%q: wrong error %#v", sym, err)
		}
	}
}

func TestYields(t *testing.T) {
	cases := []struct {
		top, tok string
		want     bool
	}{
		{"+", "+", true},
		{"+", "-", true},
		{"-", "+", true},
		{"*", "+", true},
		{"+", "*", false},
		{"*", "/", true},
		{"^", "*", true},
		{"*", "^", false},
		{"^", "^", false},
	}
	for _, c := range cases {
		top, _ := Lookup(c.top)
		tok, _ := Lookup(c.tok)
		if got := top.yields(tok); got != c.want {
			t.Errorf("%s on stack before %s: want %t, got %t", c.top, c.tok, c.want, got)
		}
	}
}

func TestAssocString(t *testing.T) {
	if s := Left.String(); s != "left" {
		t.Errorf("Left: got %q", s)
	}
	if s := Right.String(); s != "right" {
		t.Errorf("Right: got %q", s)
	}
	if s := Assoc(7).String(); s != "Assoc(7)" {
		t.Errorf("Assoc(7): got %q", s)
	}
}
