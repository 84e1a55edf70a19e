package money

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"12.99", 1299, true},
		{"0.01", 1, true},
		{"100", 10000, true},
		{"1.5", 150, true},
		{".5", 50, true},
		{"0", 0, true},
		{" 7.25 ", 725, true},
		{"", 0, false},
		{"-1.00", 0, false},
		{"+1.00", 0, false},
		{"1.999", 0, false},
		{"1.+5", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"12,99", 0, false},
		{".", 0, false},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if c.ok && err != nil {
			t.Errorf("Parse(%q): unexpected error %v", c.in, err)
			continue
		}
		if !c.ok {
			if !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("Parse(%q): want ErrInvalidAmount, got %v", c.in, err)
			}
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParsePositive_RejectsZero(t *testing.T) {
	if _, err := ParsePositive("0.00"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("want ErrInvalidAmount, got %v", err)
	}
	if got, err := ParsePositive("0.01"); err != nil || got != 1 {
		t.Fatalf("ParsePositive(0.01) = %d, %v", got, err)
	}
}

func TestFormat(t *testing.T) {
	cases := map[int64]string{
		1299:  "12.99",
		1:     "0.01",
		10000: "100.00",
		0:     "0.00",
		-250:  "-2.50",
	}
	for cents, want := range cases {
		if got := Format(cents); got != want {
			t.Errorf("Format(%d) = %q, want %q", cents, got, want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 101, 123456789} {
		got, err := Parse(Format(cents))
		if err != nil || got != cents {
			t.Errorf("round trip %d: got %d, err %v", cents, got, err)
		}
	}
}
