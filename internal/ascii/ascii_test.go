package ascii

import "testing"

func TestIsASCII(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want bool
	}{
		{"empty", nil, true},
		{"short ascii", []byte("hi"), true},
		{"short non-ascii", []byte{'h', 0x80}, false},
		{"long ascii", []byte("the quick brown fox jumps over the lazy dog 0123456789"), true},
		{"long non-ascii tail", append([]byte("the quick brown fox jumps over the lazy dog"), 0xFF), false},
		{"exact 32 boundary", make([]byte, 32), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsASCII(c.data); got != c.want {
				t.Errorf("IsASCII(%q) = %v, want %v", c.data, got, c.want)
			}
		})
	}
}

func TestUppercaseASCIIAlnum(t *testing.T) {
	cases := []struct{ in, want string }{
		{"hello, world!", "HELLOWORLD"},
		{"FrDy-99", "FRDY99"},
		{"", ""},
		{"!!!", ""},
	}
	for _, c := range cases {
		if got := string(UppercaseASCIIAlnum([]byte(c.in))); got != c.want {
			t.Errorf("UppercaseASCIIAlnum(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCollapseRepeats(t *testing.T) {
	cases := []struct{ in, want string }{
		{"THURSOOOOOOOOODAY", "THURSOODAY"},
		{"", ""},
		{"AA", "AA"},
		{"AAA", "AA"},
		{"ABBBBC", "ABBC"},
		{"ABCD", "ABCD"},
	}
	for _, c := range cases {
		if got := string(CollapseRepeats([]byte(c.in))); got != c.want {
			t.Errorf("CollapseRepeats(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
