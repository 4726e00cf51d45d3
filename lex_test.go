package calc

import (
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []string
	}{
		{"", nil},
		{"0", []string{"0"}},
		{"9876543210", []string{"9876543210"}},
		{"007", []string{"007"}},
		{"1 0", []string{"1", " ", "0"}},
		{"1.5", []string{"1", ".", "5"}},
		{"12+3", []string{"12", "+", "3"}},
		{"(3+4)*2", []string{"(", "3", "+", "4", ")", "*", "2"}},
		{"2^3^2", []string{"2", "^", "3", "^", "2"}},
		{"--", []string{"-", "-"}},
		{"a1b", []string{"a", "1", "b"}},
		{"π2", []string{"π", "2"}},
		{"\t", []string{"\t"}},
	}
	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		for _, want := range c.tokens {
			got, err := scan.next()
			if err == io.EOF {
				t.Errorf("scanning %q: expected token %q but got EOF", c.src, want)
				continue
			}
			if err != nil {
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
			if got != want {
				t.Errorf("scanning %q: want %q, got %q", c.src, want, got)
			}
		}
		for got, err := scan.next(); err != io.EOF; got, err = scan.next() {
			t.Errorf("scanning %q: extra token %q with error: %v", c.src, got, err)
		}
		if got := Tokenize(c.src); !reflect.DeepEqual(got, c.tokens) {
			t.Errorf("Tokenize(%q): want %q, got %q", c.src, c.tokens, got)
		}
	}
}
