// Licensed under the MIT license. See license text in the LICENSE file.

package ternsim

import (
	"fmt"
	"time"
)

// A MonadicKind identifies the transfer function of a one-input gate. The
// set is closed: every kind carries its complete lookup table as data.
//
type MonadicKind uint8

// Monadic gate kinds.
//
const (
	Identity  MonadicKind = iota // out = in
	Increment                    // one step forward on the (-)→(0)→(+)→(-) ring
	Decrement                    // one step backward on the ring
	Negate                       // sign flip, (0) unchanged
	IsHigh                       // (+) if in = (+), else (-)
	IsNeutral                    // (+) if in = (0), else (-)
	IsLow                        // (+) if in = (-), else (-)

	nMonadic
)

// A DiadicKind identifies the transfer function of a two-input gate.
//
type DiadicKind uint8

// Diadic gate kinds.
//
const (
	And       DiadicKind = iota // minimum under (+) > (0) > (-)
	Or                          // maximum
	Nand                        // And negated
	Nor                         // Or negated
	Xor                         // (0) if either is (0), (+) if inputs differ, else (-)
	Xnor                        // Xor negated
	Consensus                   // common value if equal, else (0)
	Sum                         // balanced-ternary digit addition
	Memory                      // latch: in2 = (+) passes in1, (-) negates it, (0) freezes

	nDiadic
)

var monadicNames = [nMonadic]string{
	"Identity", "Increment", "Decrement", "Negate", "IsHigh", "IsNeutral", "IsLow",
}

var diadicNames = [nDiadic]string{
	"And", "Or", "Nand", "Nor", "Xor", "Xnor", "Consensus", "Sum", "Memory",
}

// String returns the kind name.
//
func (k MonadicKind) String() string { return monadicNames[k] }

// String returns the kind name.
//
func (k DiadicKind) String() string { return diadicNames[k] }

// Lookup tables, indexed by input value + 1 (Minus, Neutral, Plus).
var monadicTables = [nMonadic][3]Trit{
	Identity:  {Minus, Neutral, Plus},
	Increment: {Neutral, Plus, Minus},
	Decrement: {Plus, Minus, Neutral},
	Negate:    {Plus, Neutral, Minus},
	IsHigh:    {Minus, Minus, Plus},
	IsNeutral: {Minus, Plus, Minus},
	IsLow:     {Plus, Minus, Minus},
}

var diadicTables [nDiadic][3][3]Trit

func makeTable(f func(a, b Trit) Trit) (t [3][3]Trit) {
	for a := Minus; a <= Plus; a++ {
		for b := Minus; b <= Plus; b++ {
			t[a+1][b+1] = f(a, b)
		}
	}
	return t
}

// negated composes a base table with an output negation. This is how the
// Nand, Nor and Xnor tables are derived from their base gates.
func negated(t [3][3]Trit) (n [3][3]Trit) {
	for i := range t {
		for j := range t[i] {
			n[i][j] = t[i][j].Negate()
		}
	}
	return n
}

func xorTrit(a, b Trit) Trit {
	switch {
	case a == Neutral || b == Neutral:
		return Neutral
	case a != b:
		return Plus
	default:
		return Minus
	}
}

func consensus(a, b Trit) Trit {
	if a == b {
		return a
	}
	return Neutral
}

func init() {
	diadicTables[And] = makeTable(Min)
	diadicTables[Or] = makeTable(Max)
	diadicTables[Xor] = makeTable(xorTrit)
	diadicTables[Consensus] = makeTable(consensus)
	// the balanced-ternary addition digit, as a fixed 9-entry table
	diadicTables[Sum] = [3][3]Trit{
		{Plus, Minus, Neutral}, // a = (-)
		{Minus, Neutral, Plus}, // a = (0)
		{Neutral, Plus, Minus}, // a = (+)
	}
	diadicTables[Nand] = negated(diadicTables[And])
	diadicTables[Nor] = negated(diadicTables[Or])
	diadicTables[Xnor] = negated(diadicTables[Xor])
	// Memory has no table: its output depends on its previous output.
}

// An Option configures a gate at construction time.
//
type Option func(*gateConfig)

type gateConfig struct {
	delay time.Duration
	sched *Scheduler
}

// WithDelay enables delayed propagation: instead of applying output writes
// inline, the gate schedules them on s to fire d after the current simulated
// time. Composite constructors pass their options down to every internal
// gate.
//
func WithDelay(d time.Duration, s *Scheduler) Option {
	return func(c *gateConfig) {
		c.delay = d
		c.sched = s
	}
}

// setOutput applies the no-op write suppression shared by all gates: an
// unchanged value is dropped, which is what terminates cascades on an
// otherwise idle graph.
func (c *gateConfig) setOutput(out *ConnectionPoint, v Trit, d int) error {
	if out.value == v {
		return nil
	}
	if c.delay > 0 && c.sched != nil {
		c.sched.After(c.delay, func() error {
			return out.setFromWrite(v, 0)
		})
		return nil
	}
	return out.setFromWrite(v, d)
}

// A MonadicGate computes a one-input transfer function. It owns one reader
// input point and one writer output point.
//
type MonadicGate struct {
	kind MonadicKind
	in   *ConnectionPoint
	out  *ConnectionPoint
	cfg  gateConfig
}

// NewMonadic returns a gate of the given kind.
//
func NewMonadic(k MonadicKind, opts ...Option) *MonadicGate {
	g := &MonadicGate{kind: k}
	for _, o := range opts {
		o(&g.cfg)
	}
	g.in = &ConnectionPoint{role: Reader, owner: g}
	g.out = &ConnectionPoint{role: Writer}
	return g
}

// Kind returns the gate's kind.
//
func (g *MonadicGate) Kind() MonadicKind { return g.kind }

// SetInputWire attaches the gate's input point to w.
//
func (g *MonadicGate) SetInputWire(w *Wire) error { return w.Connect(g.in) }

// SetOutputWire attaches the gate's output point to w.
//
func (g *MonadicGate) SetOutputWire(w *Wire) error { return w.Connect(g.out) }

func (g *MonadicGate) update(d int) error {
	return g.cfg.setOutput(g.out, monadicTables[g.kind][g.in.value+1], d)
}

// String implements fmt.Stringer.
//
func (g *MonadicGate) String() string {
	return fmt.Sprintf("%s<I: %s, O: %s>", g.kind, g.in.value, g.out.value)
}

// A DiadicGate computes a two-input transfer function. It owns two reader
// input points and one writer output point.
//
type DiadicGate struct {
	kind DiadicKind
	in1  *ConnectionPoint
	in2  *ConnectionPoint
	out  *ConnectionPoint
	cfg  gateConfig
}

// NewDiadic returns a gate of the given kind. For a Sum gate with the
// overflow output, use NewSum.
//
func NewDiadic(k DiadicKind, opts ...Option) *DiadicGate {
	g := &DiadicGate{kind: k}
	for _, o := range opts {
		o(&g.cfg)
	}
	g.in1 = &ConnectionPoint{role: Reader, owner: g}
	g.in2 = &ConnectionPoint{role: Reader, owner: g}
	g.out = &ConnectionPoint{role: Writer}
	return g
}

// Kind returns the gate's kind.
//
func (g *DiadicGate) Kind() DiadicKind { return g.kind }

// SetInputWire1 attaches the gate's first input point to w.
//
func (g *DiadicGate) SetInputWire1(w *Wire) error { return w.Connect(g.in1) }

// SetInputWire2 attaches the gate's second input point to w.
//
func (g *DiadicGate) SetInputWire2(w *Wire) error { return w.Connect(g.in2) }

// SetOutputWire attaches the gate's output point to w.
//
func (g *DiadicGate) SetOutputWire(w *Wire) error { return w.Connect(g.out) }

func (g *DiadicGate) update(d int) error {
	if g.kind == Memory {
		switch g.in2.value {
		case Neutral:
			// frozen: the output keeps its value whatever in1 does
			return nil
		case Plus:
			return g.cfg.setOutput(g.out, g.in1.value, d)
		default:
			return g.cfg.setOutput(g.out, g.in1.value.Negate(), d)
		}
	}
	return g.cfg.setOutput(g.out, diadicTables[g.kind][g.in1.value+1][g.in2.value+1], d)
}

// String implements fmt.Stringer.
//
func (g *DiadicGate) String() string {
	return fmt.Sprintf("%s<I1: %s, I2: %s, O: %s>", g.kind, g.in1.value, g.in2.value, g.out.value)
}

// A SumGate is a one-digit balanced-ternary adder with two outputs: the sum
// digit and an overflow digit equal to Consensus(in1, in2).
//
type SumGate struct {
	in1      *ConnectionPoint
	in2      *ConnectionPoint
	out      *ConnectionPoint
	overflow *ConnectionPoint
	cfg      gateConfig
}

// NewSum returns a table-driven adder gate.
//
func NewSum(opts ...Option) *SumGate {
	g := &SumGate{}
	for _, o := range opts {
		o(&g.cfg)
	}
	g.in1 = &ConnectionPoint{role: Reader, owner: g}
	g.in2 = &ConnectionPoint{role: Reader, owner: g}
	g.out = &ConnectionPoint{role: Writer}
	g.overflow = &ConnectionPoint{role: Writer}
	return g
}

// SetInputWire1 attaches the gate's first input point to w.
//
func (g *SumGate) SetInputWire1(w *Wire) error { return w.Connect(g.in1) }

// SetInputWire2 attaches the gate's second input point to w.
//
func (g *SumGate) SetInputWire2(w *Wire) error { return w.Connect(g.in2) }

// SetOutputWire attaches the sum output point to w.
//
func (g *SumGate) SetOutputWire(w *Wire) error { return w.Connect(g.out) }

// SetOverflowWire attaches the overflow output point to w.
//
func (g *SumGate) SetOverflowWire(w *Wire) error { return w.Connect(g.overflow) }

func (g *SumGate) update(d int) error {
	a, b := g.in1.value, g.in2.value
	if err := g.cfg.setOutput(g.out, diadicTables[Sum][a+1][b+1], d); err != nil {
		return err
	}
	return g.cfg.setOutput(g.overflow, consensus(a, b), d)
}

// String implements fmt.Stringer.
//
func (g *SumGate) String() string {
	return fmt.Sprintf("Sum<I1: %s, I2: %s, O: %s, OV: %s>", g.in1.value, g.in2.value, g.out.value, g.overflow.value)
}
