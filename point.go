// Licensed under the MIT license. See license text in the LICENSE file.

package ternsim

import "fmt"

// A Role fixes what a connection point does on its wire. It is immutable
// after construction.
//
type Role int8

// Connection point roles.
//
const (
	HighImpedance Role = iota // neither reads nor writes
	Reader                    // receives the wire's resolved value
	Writer                    // contributes a value to the wire
)

// String returns the role name.
//
func (r Role) String() string {
	switch r {
	case Reader:
		return "Reader"
	case Writer:
		return "Writer"
	default:
		return "HighImpedance"
	}
}

// updater is the recompute hook of a gate owning a reader point. The cascade
// depth d is threaded through so that feedback cycles hit the depth cap
// instead of recursing without bound.
type updater interface {
	update(d int) error
}

// A ConnectionPoint is a terminal belonging to a gate or to an external
// driver. It holds a current value and attaches to at most one wire at a
// time. Writer points feed values into their wire, reader points receive the
// wire's resolved value, and high-impedance points do neither.
//
type ConnectionPoint struct {
	role  Role
	value Trit
	owner updater
	wire  *Wire
}

// NewConnectionPoint returns a standalone connection point with the given
// role and initial value. Gate-owned points are created by the gate
// constructors; standalone points are how external drivers and probes attach
// to a circuit.
//
func NewConnectionPoint(role Role, initial Trit) *ConnectionPoint {
	return &ConnectionPoint{role: role, value: initial}
}

// Role returns the point's role.
//
func (p *ConnectionPoint) Role() Role { return p.role }

// Value returns the point's current value.
//
func (p *ConnectionPoint) Value() Trit { return p.value }

// HasWire reports whether the point is attached to a wire.
//
func (p *ConnectionPoint) HasWire() bool { return p.wire != nil }

// IsWriter reports whether the point has the Writer role.
//
func (p *ConnectionPoint) IsWriter() bool { return p.role == Writer }

// IsReader reports whether the point has the Reader role.
//
func (p *ConnectionPoint) IsReader() bool { return p.role == Reader }

// Connect attaches the point to w. It returns a ConnectionError if the point
// is already attached to a wire or already present on w.
//
func (p *ConnectionPoint) Connect(w *Wire) error {
	return w.Connect(p)
}

// Disconnect detaches the point from its wire and returns the prior wire.
// If the point is not attached, a warning is logged and Disconnect returns
// nil.
//
func (p *ConnectionPoint) Disconnect() *Wire {
	if p.wire == nil {
		warnLog.Warn("no wire to disconnect", "point", p.String())
		return nil
	}
	w := p.wire
	// cannot fail: the back-link invariant guarantees membership
	_ = w.Disconnect(p)
	return w
}

// SetFromWire sets the value of a reader point to its wire's resolved value
// and triggers the owning gate's recompute, if any. Calling it on a
// non-reader point logs a warning and changes nothing.
//
func (p *ConnectionPoint) SetFromWire(v Trit) error {
	return p.setFromWire(v, 0)
}

func (p *ConnectionPoint) setFromWire(v Trit, d int) error {
	if p.role != Reader {
		warnLog.Warn("attempt to set wire state on a non-reader point", "point", p.String())
		return nil
	}
	p.value = v
	if p.owner != nil {
		return p.owner.update(d)
	}
	return nil
}

// SetFromWrite drives a value into a writer or high-impedance point and, if
// the point is attached to a wire, triggers that wire's update. This is how
// external drivers push signals into a circuit. Calling it on a reader point
// logs a warning and changes nothing.
//
// The returned error is non-nil only when the resulting cascade exceeds
// MaxCascadeDepth (see CascadeError).
//
func (p *ConnectionPoint) SetFromWrite(v Trit) error {
	return p.setFromWrite(v, 0)
}

func (p *ConnectionPoint) setFromWrite(v Trit, d int) error {
	if p.role == Reader {
		warnLog.Warn("attempt to write to a reader point", "point", p.String())
		return nil
	}
	p.value = v
	if p.wire != nil {
		return p.wire.update(d + 1)
	}
	return nil
}

// String implements fmt.Stringer.
//
func (p *ConnectionPoint) String() string {
	return fmt.Sprintf("ConnectionPoint<%s,%s>", p.role, p.value)
}
