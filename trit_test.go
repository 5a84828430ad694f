// Licensed under the MIT license. See license text in the LICENSE file.

package ternsim_test

import (
	"testing"

	tern "github.com/ternsim/ternsim"
)

func TestTritOf(t *testing.T) {
	td := []struct {
		in   int
		out  tern.Trit
		fail bool
	}{
		{-1, tern.Minus, false},
		{0, tern.Neutral, false},
		{1, tern.Plus, false},
		{2, tern.Neutral, true},
		{-2, tern.Neutral, true},
		{42, tern.Neutral, true},
	}
	for _, d := range td {
		v, err := tern.TritOf(d.in)
		if d.fail {
			if err == nil {
				t.Errorf("TritOf(%d): expected error", d.in)
			} else if _, ok := err.(tern.BadTritError); !ok {
				t.Errorf("TritOf(%d): expected BadTritError, got %T", d.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("TritOf(%d): %v", d.in, err)
		}
		if v != d.out {
			t.Errorf("TritOf(%d) = %s, want %s", d.in, v, d.out)
		}
	}
}

func TestTritString(t *testing.T) {
	td := []struct {
		in   tern.Trit
		want string
	}{
		{tern.Plus, "(+)"},
		{tern.Neutral, "(0)"},
		{tern.Minus, "(-)"},
	}
	for _, d := range td {
		if got := d.in.String(); got != d.want {
			t.Errorf("%d.String() = %q, want %q", d.in, got, d.want)
		}
	}
}

func TestTritOrder(t *testing.T) {
	if tern.Min(tern.Plus, tern.Minus) != tern.Minus {
		t.Error("Min(+,-) != -")
	}
	if tern.Min(tern.Neutral, tern.Plus) != tern.Neutral {
		t.Error("Min(0,+) != 0")
	}
	if tern.Max(tern.Minus, tern.Neutral) != tern.Neutral {
		t.Error("Max(-,0) != 0")
	}
	if tern.Max(tern.Plus, tern.Minus) != tern.Plus {
		t.Error("Max(+,-) != +")
	}
}
