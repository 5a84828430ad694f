// Licensed under the MIT license. See license text in the LICENSE file.

package ternsim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tern "github.com/ternsim/ternsim"
)

type tryteHarness struct {
	reg     *tern.Tryte
	writers [tern.TryteSize]*tern.ConnectionPoint
	readers [tern.TryteSize]*tern.ConnectionPoint
	ctl     *tern.ConnectionPoint
}

func newTryteHarness(t *testing.T) *tryteHarness {
	t.Helper()
	h := &tryteHarness{reg: tern.NewTryte()}

	var ins, outs []*tern.Wire
	for i := 0; i < tern.TryteSize; i++ {
		h.writers[i] = tern.NewConnectionPoint(tern.Writer, tern.Neutral)
		h.readers[i] = tern.NewConnectionPoint(tern.Reader, tern.Neutral)
		wi, wo := tern.NewWire(), tern.NewWire()
		require.NoError(t, wi.Connect(h.writers[i]))
		require.NoError(t, wo.Connect(h.readers[i]))
		ins = append(ins, wi)
		outs = append(outs, wo)
	}
	h.ctl = tern.NewConnectionPoint(tern.Writer, tern.Neutral)
	wc := tern.NewWire()
	require.NoError(t, wc.Connect(h.ctl))

	require.NoError(t, h.reg.SetInputWires(ins))
	require.NoError(t, h.reg.SetOutputWires(outs))
	require.NoError(t, h.reg.SetReadWire(wc))
	return h
}

func (h *tryteHarness) writeAll(t *testing.T, v tern.Trit) {
	t.Helper()
	for _, w := range h.writers {
		require.NoError(t, w.SetFromWrite(v))
	}
}

func (h *tryteHarness) assertAll(t *testing.T, want tern.Trit, msg string) {
	t.Helper()
	for i, r := range h.readers {
		assert.Equal(t, want, r.Value(), "cell %d: %s", i, msg)
	}
}

func Test_tryte_latch_freeze_negate(t *testing.T) {
	h := newTryteHarness(t)

	// clear: all inputs neutral, control on
	h.writeAll(t, tern.Neutral)
	require.NoError(t, h.ctl.SetFromWrite(tern.Plus))
	h.assertAll(t, tern.Neutral, "cleared register should read (0)")

	// control off: input changes must not show
	require.NoError(t, h.ctl.SetFromWrite(tern.Neutral))
	h.writeAll(t, tern.Plus)
	h.assertAll(t, tern.Neutral, "frozen register must ignore input writes")

	// control on: the pending inputs latch through
	require.NoError(t, h.ctl.SetFromWrite(tern.Plus))
	h.assertAll(t, tern.Plus, "register should latch (+)")

	// control inverted: everything negates
	require.NoError(t, h.ctl.SetFromWrite(tern.Minus))
	h.assertAll(t, tern.Minus, "register should latch negated inputs")

	// freeze again, then change inputs: outputs must hold
	require.NoError(t, h.ctl.SetFromWrite(tern.Neutral))
	h.writeAll(t, tern.Neutral)
	h.assertAll(t, tern.Minus, "frozen register must hold its last outputs")
}

func Test_tryte_distinct_values(t *testing.T) {
	h := newTryteHarness(t)

	word := [tern.TryteSize]tern.Trit{
		tern.Plus, tern.Minus, tern.Neutral,
		tern.Minus, tern.Plus, tern.Neutral,
		tern.Neutral, tern.Plus, tern.Minus,
	}
	require.NoError(t, h.ctl.SetFromWrite(tern.Plus))
	for i, w := range h.writers {
		require.NoError(t, w.SetFromWrite(word[i]))
	}
	for i, r := range h.readers {
		assert.Equal(t, word[i], r.Value(), "cell %d", i)
	}

	// negated latch flips every cell
	require.NoError(t, h.ctl.SetFromWrite(tern.Minus))
	for i, r := range h.readers {
		assert.Equal(t, word[i].Negate(), r.Value(), "cell %d", i)
	}
}

func Test_tryte_wiring_errors(t *testing.T) {
	reg := tern.NewTryte()

	err := reg.SetInputWireAt(-1, tern.NewWire())
	require.Error(t, err)
	assert.True(t, tern.IsConnectionError(err))

	err = reg.SetOutputWireAt(tern.TryteSize, tern.NewWire())
	require.Error(t, err)
	assert.True(t, tern.IsConnectionError(err))

	short := []*tern.Wire{tern.NewWire(), tern.NewWire()}
	err = reg.SetInputWires(short)
	require.Error(t, err)
	assert.True(t, tern.IsConnectionError(err))

	err = reg.SetOutputWires(short)
	require.Error(t, err)
	assert.True(t, tern.IsConnectionError(err))
}

func Test_tryte_wire_at(t *testing.T) {
	reg := tern.NewTryte()

	in := tern.NewConnectionPoint(tern.Writer, tern.Neutral)
	out := tern.NewConnectionPoint(tern.Reader, tern.Neutral)
	ctl := tern.NewConnectionPoint(tern.Writer, tern.Neutral)
	wi, wo, wc := tern.NewWire(), tern.NewWire(), tern.NewWire()
	require.NoError(t, wi.Connect(in))
	require.NoError(t, wo.Connect(out))
	require.NoError(t, wc.Connect(ctl))

	require.NoError(t, reg.SetInputWireAt(4, wi))
	require.NoError(t, reg.SetOutputWireAt(4, wo))
	require.NoError(t, reg.SetReadWire(wc))

	require.NoError(t, ctl.SetFromWrite(tern.Plus))
	require.NoError(t, in.SetFromWrite(tern.Minus))
	assert.Equal(t, tern.Minus, out.Value())
}
