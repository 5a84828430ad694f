// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package ternsim provides the building blocks of a balanced-ternary logic
circuit: tri-state wires, connection points, and a library of ternary gates
that compose into larger circuits such as adders and registers.

Signals take one of three values: Plus, Neutral or Minus. A circuit is built
by creating gates and wires and connecting them; it is then driven by writing
values into writer connection points. A write cascades synchronously through
the connected graph, depth first, and returns once every downstream gate has
settled. Readers observe resolved values off reader connection points.

Gates optionally propagate their outputs after a fixed delay. Delayed writes
are queued on a Scheduler, a deterministic event queue that tests and callers
advance explicitly instead of relying on platform timers.
*/
package ternsim
