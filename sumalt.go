// Licensed under the MIT license. See license text in the LICENSE file.

package ternsim

// internal wiring of a composite cannot fail unless the constructor itself
// is wrong, so treat an error as a programmer error.
func mustConnect(err error) {
	if err != nil {
		panic(err)
	}
}

// A SumAlternateGate is an adder rebuilt purely from primitive gates,
// behaviorally indistinguishable from SumGate for all nine input pairs:
//
//	sum      = ((a = -1) ∧ (b - 1)) ∨ ((a = 0) ∧ b) ∨ ((a = 1) ∧ (b + 1))
//	overflow = consensus(a, b)
//
// The inputs are buffered through Identity gates so each can fan out to the
// three selector branches over a single internal wire.
//
type SumAlternateGate struct {
	bufA     *MonadicGate
	bufB     *MonadicGate
	outGate  *DiadicGate
	overflow *DiadicGate
}

// NewSumAlternate returns a gate-composed adder. Options are passed down to
// every internal gate.
//
func NewSumAlternate(opts ...Option) *SumAlternateGate {
	g := &SumAlternateGate{
		bufA: NewMonadic(Identity, opts...),
		bufB: NewMonadic(Identity, opts...),
	}

	wireA, wireB := NewWire(), NewWire()
	mustConnect(g.bufA.SetOutputWire(wireA))
	mustConnect(g.bufB.SetOutputWire(wireB))

	// low branch: (a = -1) ∧ (b - 1)
	lowSel := NewMonadic(IsLow, opts...)
	lowDec := NewMonadic(Decrement, opts...)
	lowAnd := NewDiadic(And, opts...)
	wLowSel, wLowDec, wLow := NewWire(), NewWire(), NewWire()
	mustConnect(lowSel.SetInputWire(wireA))
	mustConnect(lowSel.SetOutputWire(wLowSel))
	mustConnect(lowDec.SetInputWire(wireB))
	mustConnect(lowDec.SetOutputWire(wLowDec))
	mustConnect(lowAnd.SetInputWire1(wLowSel))
	mustConnect(lowAnd.SetInputWire2(wLowDec))
	mustConnect(lowAnd.SetOutputWire(wLow))

	// middle branch: (a = 0) ∧ b
	midSel := NewMonadic(IsNeutral, opts...)
	midAnd := NewDiadic(And, opts...)
	wMidSel, wMid := NewWire(), NewWire()
	mustConnect(midSel.SetInputWire(wireA))
	mustConnect(midSel.SetOutputWire(wMidSel))
	mustConnect(midAnd.SetInputWire1(wMidSel))
	mustConnect(midAnd.SetInputWire2(wireB))
	mustConnect(midAnd.SetOutputWire(wMid))

	// high branch: (a = 1) ∧ (b + 1)
	highSel := NewMonadic(IsHigh, opts...)
	highInc := NewMonadic(Increment, opts...)
	highAnd := NewDiadic(And, opts...)
	wHighSel, wHighInc, wHigh := NewWire(), NewWire(), NewWire()
	mustConnect(highSel.SetInputWire(wireA))
	mustConnect(highSel.SetOutputWire(wHighSel))
	mustConnect(highInc.SetInputWire(wireB))
	mustConnect(highInc.SetOutputWire(wHighInc))
	mustConnect(highAnd.SetInputWire1(wHighSel))
	mustConnect(highAnd.SetInputWire2(wHighInc))
	mustConnect(highAnd.SetOutputWire(wHigh))

	// low ∨ middle, then ∨ high
	orLowMid := NewDiadic(Or, opts...)
	wLowMid := NewWire()
	mustConnect(orLowMid.SetInputWire1(wLow))
	mustConnect(orLowMid.SetInputWire2(wMid))
	mustConnect(orLowMid.SetOutputWire(wLowMid))

	g.outGate = NewDiadic(Or, opts...)
	mustConnect(g.outGate.SetInputWire1(wHigh))
	mustConnect(g.outGate.SetInputWire2(wLowMid))

	g.overflow = NewDiadic(Consensus, opts...)
	mustConnect(g.overflow.SetInputWire1(wireA))
	mustConnect(g.overflow.SetInputWire2(wireB))

	return g
}

// SetInputWire1 attaches the first input to w.
//
func (g *SumAlternateGate) SetInputWire1(w *Wire) error { return g.bufA.SetInputWire(w) }

// SetInputWire2 attaches the second input to w.
//
func (g *SumAlternateGate) SetInputWire2(w *Wire) error { return g.bufB.SetInputWire(w) }

// SetOutputWire attaches the sum output to w.
//
func (g *SumAlternateGate) SetOutputWire(w *Wire) error { return g.outGate.SetOutputWire(w) }

// SetOverflowWire attaches the overflow output to w.
//
func (g *SumAlternateGate) SetOverflowWire(w *Wire) error { return g.overflow.SetOutputWire(w) }
