// Licensed under the MIT license. See license text in the LICENSE file.

package ternsim

import "log/slog"

// Non-fatal conditions (disconnecting an unattached point, wire contention,
// role misuse) are logged as warnings and execution continues. The simulation
// runs on a single logical thread, so a plain package variable suffices.
var warnLog = slog.Default()

// SetLogger replaces the logger used for non-fatal warnings. Passing nil
// restores slog.Default(). It returns the previous logger so callers can
// restore it.
//
func SetLogger(l *slog.Logger) *slog.Logger {
	prev := warnLog
	if l == nil {
		l = slog.Default()
	}
	warnLog = l
	return prev
}
