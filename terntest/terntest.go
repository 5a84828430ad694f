// Licensed under the MIT license. See license text in the LICENSE file.

// Package terntest provides utility functions for testing ternary circuits.
//
package terntest

import (
	"context"
	"log/slog"
	"testing"

	"github.com/ternsim/ternsim"
)

// Trits lists the three signal values in ascending order. Tests range over
// it to cover a gate's whole input domain.
//
var Trits = [3]ternsim.Trit{ternsim.Minus, ternsim.Neutral, ternsim.Plus}

// A Monadic is any one-input, one-output gate.
//
type Monadic interface {
	SetInputWire(*ternsim.Wire) error
	SetOutputWire(*ternsim.Wire) error
}

// A Diadic is any two-input, one-output gate.
//
type Diadic interface {
	SetInputWire1(*ternsim.Wire) error
	SetInputWire2(*ternsim.Wire) error
	SetOutputWire(*ternsim.Wire) error
}

// An Adder is a diadic gate with an overflow output.
//
type Adder interface {
	Diadic
	SetOverflowWire(*ternsim.Wire) error
}

func connect(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// WrapMonadic wires g between a driving writer and an observing reader and
// returns a drive function and a read function.
//
func WrapMonadic(t *testing.T, g Monadic) (drive func(ternsim.Trit), read func() ternsim.Trit) {
	t.Helper()
	in := ternsim.NewConnectionPoint(ternsim.Writer, ternsim.Neutral)
	out := ternsim.NewConnectionPoint(ternsim.Reader, ternsim.Neutral)
	wIn, wOut := ternsim.NewWire(), ternsim.NewWire()
	connect(t, wIn.Connect(in))
	connect(t, g.SetInputWire(wIn))
	connect(t, g.SetOutputWire(wOut))
	connect(t, wOut.Connect(out))
	drive = func(v ternsim.Trit) {
		t.Helper()
		if err := in.SetFromWrite(v); err != nil {
			t.Fatal(err)
		}
	}
	read = out.Value
	return drive, read
}

// WrapDiadic wires g between two driving writers and an observing reader.
//
func WrapDiadic(t *testing.T, g Diadic) (drive1, drive2 func(ternsim.Trit), read func() ternsim.Trit) {
	t.Helper()
	in1 := ternsim.NewConnectionPoint(ternsim.Writer, ternsim.Neutral)
	in2 := ternsim.NewConnectionPoint(ternsim.Writer, ternsim.Neutral)
	out := ternsim.NewConnectionPoint(ternsim.Reader, ternsim.Neutral)
	w1, w2, wOut := ternsim.NewWire(), ternsim.NewWire(), ternsim.NewWire()
	connect(t, w1.Connect(in1))
	connect(t, w2.Connect(in2))
	connect(t, g.SetInputWire1(w1))
	connect(t, g.SetInputWire2(w2))
	connect(t, g.SetOutputWire(wOut))
	connect(t, wOut.Connect(out))
	mk := func(p *ternsim.ConnectionPoint) func(ternsim.Trit) {
		return func(v ternsim.Trit) {
			t.Helper()
			if err := p.SetFromWrite(v); err != nil {
				t.Fatal(err)
			}
		}
	}
	return mk(in1), mk(in2), out.Value
}

// WrapAdder wires g like WrapDiadic and additionally observes the overflow
// output.
//
func WrapAdder(t *testing.T, g Adder) (drive1, drive2 func(ternsim.Trit), readSum, readOverflow func() ternsim.Trit) {
	t.Helper()
	drive1, drive2, readSum = WrapDiadic(t, g)
	over := ternsim.NewConnectionPoint(ternsim.Reader, ternsim.Neutral)
	wOver := ternsim.NewWire()
	connect(t, g.SetOverflowWire(wOver))
	connect(t, wOver.Connect(over))
	return drive1, drive2, readSum, over.Value
}

// CompareDiadic drives g1 and g2 through all nine input pairs and fails the
// test if their outputs ever differ.
//
func CompareDiadic(t *testing.T, g1, g2 Diadic) {
	t.Helper()
	d11, d12, r1 := WrapDiadic(t, g1)
	d21, d22, r2 := WrapDiadic(t, g2)
	for _, a := range Trits {
		for _, b := range Trits {
			d11(a)
			d21(a)
			d12(b)
			d22(b)
			if v1, v2 := r1(), r2(); v1 != v2 {
				t.Errorf("(%s, %s): outputs differ: %s != %s", a, b, v1, v2)
			}
		}
	}
}

// CompareAdder drives g1 and g2 through all nine input pairs and fails the
// test if their sum or overflow outputs ever differ.
//
func CompareAdder(t *testing.T, g1, g2 Adder) {
	t.Helper()
	d11, d12, s1, o1 := WrapAdder(t, g1)
	d21, d22, s2, o2 := WrapAdder(t, g2)
	for _, a := range Trits {
		for _, b := range Trits {
			d11(a)
			d21(a)
			d12(b)
			d22(b)
			if v1, v2 := s1(), s2(); v1 != v2 {
				t.Errorf("(%s, %s): sums differ: %s != %s", a, b, v1, v2)
			}
			if v1, v2 := o1(), o2(); v1 != v2 {
				t.Errorf("(%s, %s): overflows differ: %s != %s", a, b, v1, v2)
			}
		}
	}
}

// A WarnRecorder is a slog.Handler that records log messages so tests can
// assert that a warning was (or was not) emitted.
//
type WarnRecorder struct {
	msgs []string
}

// Enabled implements slog.Handler.
func (r *WarnRecorder) Enabled(context.Context, slog.Level) bool { return true }

// Handle implements slog.Handler.
func (r *WarnRecorder) Handle(_ context.Context, rec slog.Record) error {
	r.msgs = append(r.msgs, rec.Message)
	return nil
}

// WithAttrs implements slog.Handler.
func (r *WarnRecorder) WithAttrs([]slog.Attr) slog.Handler { return r }

// WithGroup implements slog.Handler.
func (r *WarnRecorder) WithGroup(string) slog.Handler { return r }

// Messages returns the recorded messages.
//
func (r *WarnRecorder) Messages() []string { return r.msgs }

// CaptureWarnings runs f with the package warning logger replaced by a
// recorder and returns the messages logged during the call.
//
func CaptureWarnings(f func()) []string {
	r := &WarnRecorder{}
	prev := ternsim.SetLogger(slog.New(r))
	defer ternsim.SetLogger(prev)
	f()
	return r.msgs
}
