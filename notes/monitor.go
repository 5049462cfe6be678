package notes

import "deedles.dev/imposter/internal/util"

// Monitor is an output that the surface can be placed on.
type Monitor interface {
	Connector() string
}

// SelectMonitor picks the monitor to put the surface on. A lone
// monitor is always used. Otherwise, the first monitor whose connector
// is output is used. If ok is false, the compositor should choose.
func SelectMonitor[M Monitor](monitors []M, output string) (m M, ok bool) {
	if len(monitors) == 1 {
		return monitors[0], true
	}
	if output == "" {
		return m, false
	}

	return util.FindFunc(monitors, func(m M) bool {
		return m.Connector() == output
	})
}
