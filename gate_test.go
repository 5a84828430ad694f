// Licensed under the MIT license. See license text in the LICENSE file.

package ternsim_test

import (
	"testing"

	tern "github.com/ternsim/ternsim"
	"github.com/ternsim/ternsim/terntest"
)

// rows are indexed by input (-), (0), (+)
func Test_gate_monadic(t *testing.T) {
	td := []struct {
		kind tern.MonadicKind
		out  [3]tern.Trit
	}{
		{tern.Identity, [3]tern.Trit{tern.Minus, tern.Neutral, tern.Plus}},
		{tern.Increment, [3]tern.Trit{tern.Neutral, tern.Plus, tern.Minus}},
		{tern.Decrement, [3]tern.Trit{tern.Plus, tern.Minus, tern.Neutral}},
		{tern.Negate, [3]tern.Trit{tern.Plus, tern.Neutral, tern.Minus}},
		{tern.IsHigh, [3]tern.Trit{tern.Minus, tern.Minus, tern.Plus}},
		{tern.IsNeutral, [3]tern.Trit{tern.Minus, tern.Plus, tern.Minus}},
		{tern.IsLow, [3]tern.Trit{tern.Plus, tern.Minus, tern.Minus}},
	}
	for _, d := range td {
		t.Run(d.kind.String(), func(t *testing.T) {
			drive, read := terntest.WrapMonadic(t, tern.NewMonadic(d.kind))
			for i, in := range terntest.Trits {
				drive(in)
				if got := read(); got != d.out[i] {
					t.Errorf("%s%s = %s, want %s", d.kind, in, got, d.out[i])
				}
			}
		})
	}
}

// rows are indexed by input1 (-), (0), (+); columns by input2
func Test_gate_diadic(t *testing.T) {
	m, n, p := tern.Minus, tern.Neutral, tern.Plus
	td := []struct {
		kind tern.DiadicKind
		out  [3][3]tern.Trit
	}{
		{tern.And, [3][3]tern.Trit{{m, m, m}, {m, n, n}, {m, n, p}}},
		{tern.Or, [3][3]tern.Trit{{m, n, p}, {n, n, p}, {p, p, p}}},
		{tern.Nand, [3][3]tern.Trit{{p, p, p}, {p, n, n}, {p, n, m}}},
		{tern.Nor, [3][3]tern.Trit{{p, n, m}, {n, n, m}, {m, m, m}}},
		{tern.Xor, [3][3]tern.Trit{{m, n, p}, {n, n, n}, {p, n, m}}},
		{tern.Xnor, [3][3]tern.Trit{{p, n, m}, {n, n, n}, {m, n, p}}},
		{tern.Consensus, [3][3]tern.Trit{{m, n, n}, {n, n, n}, {n, n, p}}},
		{tern.Sum, [3][3]tern.Trit{{p, m, n}, {m, n, p}, {n, p, m}}},
	}
	for _, d := range td {
		t.Run(d.kind.String(), func(t *testing.T) {
			drive1, drive2, read := terntest.WrapDiadic(t, tern.NewDiadic(d.kind))
			for i, a := range terntest.Trits {
				for j, b := range terntest.Trits {
					drive1(a)
					drive2(b)
					if got := read(); got != d.out[i][j] {
						t.Errorf("%s(%s, %s) = %s, want %s", d.kind, a, b, got, d.out[i][j])
					}
				}
			}
		})
	}
}

func Test_gate_sum(t *testing.T) {
	m, n, p := tern.Minus, tern.Neutral, tern.Plus
	sum := [3][3]tern.Trit{{p, m, n}, {m, n, p}, {n, p, m}}
	over := [3][3]tern.Trit{{m, n, n}, {n, n, n}, {n, n, p}}

	drive1, drive2, readSum, readOver := terntest.WrapAdder(t, tern.NewSum())
	for i, a := range terntest.Trits {
		for j, b := range terntest.Trits {
			drive1(a)
			drive2(b)
			if got := readSum(); got != sum[i][j] {
				t.Errorf("Sum(%s, %s) = %s, want %s", a, b, got, sum[i][j])
			}
			if got := readOver(); got != over[i][j] {
				t.Errorf("Overflow(%s, %s) = %s, want %s", a, b, got, over[i][j])
			}
		}
	}
}

func Test_gate_sum_alternate(t *testing.T) {
	terntest.CompareAdder(t, tern.NewSum(), tern.NewSumAlternate())
}

// The Memory gate is stateful, so expectations are an ordered sequence: the
// same (in1, in2) pair can yield different outputs depending on history.
func Test_gate_memory(t *testing.T) {
	m, n, p := tern.Minus, tern.Neutral, tern.Plus
	drive1, drive2, read := terntest.WrapDiadic(t, tern.NewDiadic(tern.Memory))

	steps := []struct {
		in1, in2, out tern.Trit
	}{
		{n, n, n},
		{p, n, n}, // frozen, data change invisible
		{p, p, p}, // latched through
		{p, m, m}, // latched negated
		{n, m, n},
		{m, m, p},
		{m, n, p}, // frozen again
		{n, n, p},
		{n, p, n},
		{m, p, m},
		{m, n, m},
		{n, n, m},
	}
	for i, st := range steps {
		drive1(st.in1)
		drive2(st.in2)
		if got := read(); got != st.out {
			t.Errorf("step %d: Memory(%s, %s) = %s, want %s", i, st.in1, st.in2, got, st.out)
		}
	}
}

func Test_gate_wrong_role_write(t *testing.T) {
	g := tern.NewMonadic(tern.Identity)
	w := tern.NewWire()
	if err := g.SetOutputWire(w); err != nil {
		t.Fatal(err)
	}
	r := tern.NewConnectionPoint(tern.Reader, tern.Neutral)
	if err := w.Connect(r); err != nil {
		t.Fatal(err)
	}
	// writing into a reader point must warn and leave the value alone
	msgs := terntest.CaptureWarnings(func() {
		if err := r.SetFromWrite(tern.Plus); err != nil {
			t.Fatal(err)
		}
	})
	if len(msgs) != 1 {
		t.Fatalf("expected one warning, got %v", msgs)
	}
	if r.Value() != tern.Neutral {
		t.Errorf("reader value changed to %s", r.Value())
	}
}
