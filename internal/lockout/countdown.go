package lockout

import (
	"errors"
	"fmt"
)

// State is the countdown lifecycle: Idle before a valid duration is
// parsed, Running while ticking, Expired once remaining hits zero.
// Expired is terminal.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateExpired:
		return "expired"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrNoDuration is returned by Start for a non-positive total. A zero
// total must never start a countdown: downstream progress math divides
// by the total.
var ErrNoDuration = errors.New("lockout: countdown requires a positive duration")

// Countdown is the widget's state machine. The total is captured at
// Start and never changes; remaining decrements once per Tick. The
// caller owns exactly one tick source per Countdown and stops feeding
// ticks once Running returns false.
type Countdown struct {
	total     int
	remaining int
	state     State
}

// Start creates a running countdown of total whole seconds.
func Start(total int) (*Countdown, error) {
	if total <= 0 {
		return nil, ErrNoDuration
	}
	return &Countdown{total: total, remaining: total, state: StateRunning}, nil
}

// Tick consumes one second and reports whether the countdown is still
// running afterwards. Once Expired, Tick changes nothing, so a stray
// extra tick cannot decrement past the terminal state.
func (c *Countdown) Tick() bool {
	if c.state != StateRunning {
		return false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.state = StateExpired
	}
	return c.state == StateRunning
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int { return c.remaining }

// Total returns the seconds captured at Start.
func (c *Countdown) Total() int { return c.total }

// State returns the current lifecycle state.
func (c *Countdown) State() State { return c.state }

// Fraction returns the elapsed share of the total, 0 at Start and 1 at
// expiry.
func (c *Countdown) Fraction() float64 {
	if c.total <= 0 {
		return 0
	}
	return float64(c.total-c.remaining) / float64(c.total)
}

// Percent returns Fraction as a whole percentage 0-100.
func (c *Countdown) Percent() int {
	if c.total <= 0 {
		return 0
	}
	return (c.total - c.remaining) * 100 / c.total
}

// Label formats the remaining time for display: "M:SS" when at least a
// minute is left, otherwise "Ns".
func (c *Countdown) Label() string {
	if c.remaining >= 60 {
		return fmt.Sprintf("%d:%02d", c.remaining/60, c.remaining%60)
	}
	return fmt.Sprintf("%ds", c.remaining)
}
