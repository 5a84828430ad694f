// Licensed under the MIT license. See license text in the LICENSE file.

// Package osc implements a ternary oscillator on top of the ternsim core: a
// writer connection point driven by a periodic scheduled callback. The core
// does not depend on it; it is a client like any other circuit driver.
//
package osc

import (
	"time"

	"github.com/ternsim/ternsim"
)

// A Scheduler schedules one-shot callbacks. *ternsim.Scheduler satisfies it;
// tests may inject their own to control time.
//
type Scheduler interface {
	After(d time.Duration, fn func() error)
}

// waveform is one full period: the value advances one step per timer fire.
var waveform = [4]ternsim.Trit{ternsim.Neutral, ternsim.Plus, ternsim.Neutral, ternsim.Minus}

// An Oscillator cycles its output through (0), (+), (0), (-), … advancing one
// step each time its timer fires. The timer period is a quarter of the full
// oscillation period.
//
type Oscillator struct {
	out   *ternsim.ConnectionPoint
	sched Scheduler
	step  time.Duration
	phase int
}

// New returns an oscillator with the given full period, armed on s and
// starting at Neutral.
//
func New(period time.Duration, s Scheduler) *Oscillator {
	o := &Oscillator{
		out:   ternsim.NewConnectionPoint(ternsim.Writer, ternsim.Neutral),
		sched: s,
		step:  period / 4,
	}
	o.arm()
	return o
}

func (o *Oscillator) arm() {
	o.sched.After(o.step, o.tick)
}

func (o *Oscillator) tick() error {
	o.phase = (o.phase + 1) % len(waveform)
	err := o.out.SetFromWrite(waveform[o.phase])
	o.arm()
	return err
}

// ReadOutput returns the oscillator's current value.
//
func (o *Oscillator) ReadOutput() ternsim.Trit { return o.out.Value() }

// Output returns the oscillator's writer point, so the signal can be wired
// into a circuit.
//
func (o *Oscillator) Output() *ternsim.ConnectionPoint { return o.out }
