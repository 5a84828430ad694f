// Licensed under the MIT license. See license text in the LICENSE file.

package ternsim

// TryteSize is the number of memory cells in a Tryte, the ternary analog of
// a byte.
const TryteSize = 9

// A Tryte is a nine-cell ternary memory register: nine Memory gates sharing
// one control wire. Driving the control signal to Plus latches all nine data
// inputs through to the outputs, Minus latches them negated, and Neutral
// freezes the outputs against further input changes.
//
type Tryte struct {
	cells [TryteSize]*DiadicGate
	read  *MonadicGate
}

// NewTryte returns a register with all cells at Neutral. Options are passed
// down to every internal gate.
//
func NewTryte(opts ...Option) *Tryte {
	t := &Tryte{read: NewMonadic(Identity, opts...)}

	// one internal wire fans the control signal out to all nine cells so
	// they observe the same value simultaneously
	ctl := NewWire()
	mustConnect(t.read.SetOutputWire(ctl))
	for i := range t.cells {
		t.cells[i] = NewDiadic(Memory, opts...)
		mustConnect(t.cells[i].SetInputWire2(ctl))
	}
	return t
}

func (t *Tryte) cellAt(idx int) (*DiadicGate, error) {
	if idx < 0 || idx >= TryteSize {
		return nil, connErrorf("index not in range [0,%d]: %d", TryteSize-1, idx)
	}
	return t.cells[idx], nil
}

// SetInputWireAt attaches w as the data input of cell idx. It returns a
// ConnectionError if idx is out of range.
//
func (t *Tryte) SetInputWireAt(idx int, w *Wire) error {
	cell, err := t.cellAt(idx)
	if err != nil {
		return err
	}
	return cell.SetInputWire1(w)
}

// SetInputWires attaches one data input wire per cell. It returns a
// ConnectionError unless exactly TryteSize wires are given.
//
func (t *Tryte) SetInputWires(wires []*Wire) error {
	if len(wires) != TryteSize {
		return connErrorf("cannot attach %d wires to %d memory inputs", len(wires), TryteSize)
	}
	for i, w := range wires {
		if err := t.cells[i].SetInputWire1(w); err != nil {
			return err
		}
	}
	return nil
}

// SetOutputWireAt attaches w as the output of cell idx. It returns a
// ConnectionError if idx is out of range.
//
func (t *Tryte) SetOutputWireAt(idx int, w *Wire) error {
	cell, err := t.cellAt(idx)
	if err != nil {
		return err
	}
	return cell.SetOutputWire(w)
}

// SetOutputWires attaches one output wire per cell. It returns a
// ConnectionError unless exactly TryteSize wires are given.
//
func (t *Tryte) SetOutputWires(wires []*Wire) error {
	if len(wires) != TryteSize {
		return connErrorf("cannot attach %d wires to %d memory outputs", len(wires), TryteSize)
	}
	for i, w := range wires {
		if err := t.cells[i].SetOutputWire(w); err != nil {
			return err
		}
	}
	return nil
}

// SetReadWire attaches the shared control signal.
//
func (t *Tryte) SetReadWire(w *Wire) error {
	return t.read.SetInputWire(w)
}
