// Licensed under the MIT license. See license text in the LICENSE file.

package ternsim

import "fmt"

// MaxCascadeDepth bounds the synchronous propagation cascade. The no-op write
// suppression in gates terminates cascades on well-formed circuits; a wiring
// graph with a true feedback cycle does not settle and is aborted with a
// CascadeError once the cascade reaches this depth.
const MaxCascadeDepth = 1000

// A Wire is a shared bus. It aggregates the values of its attached writer
// points into one resolved value and fans that value out to its attached
// reader points. Connection order is preserved: with more than one writer the
// first-connected writer wins.
//
type Wire struct {
	conns []*ConnectionPoint
}

// NewWire returns an empty wire.
//
func NewWire() *Wire { return &Wire{} }

// Connect appends p to the wire. It returns a ConnectionError if p is
// already on this wire or attached to any wire.
//
func (w *Wire) Connect(p *ConnectionPoint) error {
	if p.wire == w {
		return connErrorf("%s is already connected", p)
	}
	if p.wire != nil {
		return connErrorf("%s already connected to another wire", p)
	}
	w.conns = append(w.conns, p)
	p.wire = w
	return nil
}

// Disconnect removes p from the wire and clears its back-link. It returns a
// ConnectionError if p is not on this wire.
//
func (w *Wire) Disconnect(p *ConnectionPoint) error {
	for i, c := range w.conns {
		if c == p {
			w.conns = append(w.conns[:i], w.conns[i+1:]...)
			p.wire = nil
			return nil
		}
	}
	return connErrorf("%s is not connected", p)
}

// DisconnectAll detaches every connection point, leaving the wire empty.
//
func (w *Wire) DisconnectAll() {
	for _, c := range w.conns {
		c.wire = nil
	}
	w.conns = w.conns[:0]
}

// Size returns the number of attached connection points.
//
func (w *Wire) Size() int { return len(w.conns) }

// Update resolves the wire's value from its writers and pushes it to its
// readers. With no writer attached every reader keeps its value. With more
// than one writer a warning is logged and the first-connected writer's value
// is used; this keeps contention deterministic instead of aborting the
// simulation. High-impedance points are never touched.
//
// The returned error is non-nil only when the resulting cascade exceeds
// MaxCascadeDepth.
//
func (w *Wire) Update() error {
	return w.update(0)
}

func (w *Wire) update(d int) error {
	if d > MaxCascadeDepth {
		return CascadeError(d)
	}
	resolved := Neutral
	writers := 0
	for _, c := range w.conns {
		if c.role == Writer {
			if writers == 0 {
				resolved = c.value
			}
			writers++
		}
	}
	if writers == 0 {
		return nil
	}
	if writers > 1 {
		warnLog.Warn("more than one writer on wire, using first connected value",
			"writers", writers, "value", resolved.String())
	}
	for _, c := range w.conns {
		if c.role == Reader {
			if err := c.setFromWire(resolved, d); err != nil {
				return err
			}
		}
	}
	return nil
}

// String implements fmt.Stringer.
//
func (w *Wire) String() string {
	return fmt.Sprintf("Wire<%d conns>", len(w.conns))
}
