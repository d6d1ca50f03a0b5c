package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Animation timings. They are cosmetic: nothing here touches navigation
// state, and a disabled animation simply jumps to its settled frame.
const (
	frameInterval         = 50 * time.Millisecond
	contentExitDuration   = 300 * time.Millisecond
	contentEnterDuration  = 300 * time.Millisecond
	connectorFillDuration = 500 * time.Millisecond
	consoleDelay          = 500 * time.Millisecond
	consoleFadeDuration   = 300 * time.Millisecond
)

// frameMsg advances every running animation by one frame.
type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 || elapsed >= total {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(total)
}

type transitionPhase int

const (
	phaseIdle transitionPhase = iota
	phaseExit
	phaseEnter
)

// contentTransition runs the content card's exit-then-enter sequence. The
// step id is the animation key: retargeting to the id already targeted does
// nothing.
type contentTransition struct {
	shown   int // Step id drawn right now
	target  int // Step id that will be drawn once settled
	phase   transitionPhase
	elapsed time.Duration
}

func newContentTransition(id int) contentTransition {
	return contentTransition{shown: id, target: id}
}

// retarget points the transition at id and reports whether frames are needed.
func (c *contentTransition) retarget(id int, animate bool) bool {
	if !animate {
		*c = newContentTransition(id)
		return false
	}
	if id == c.target {
		return false
	}
	c.target = id
	switch c.phase {
	case phaseIdle:
		c.phase = phaseExit
		c.elapsed = 0
	case phaseEnter:
		// The card on its way in leaves before the new one enters.
		c.phase = phaseExit
		c.elapsed = 0
	case phaseExit:
		// Already leaving; the entrance picks up the new target.
	}
	return true
}

// advance moves the transition forward and reports whether it is still running.
func (c *contentTransition) advance(dt time.Duration) bool {
	switch c.phase {
	case phaseExit:
		c.elapsed += dt
		if c.elapsed >= contentExitDuration {
			c.shown = c.target
			c.phase = phaseEnter
			c.elapsed = 0
		}
	case phaseEnter:
		c.elapsed += dt
		if c.elapsed >= contentEnterDuration {
			c.phase = phaseIdle
			c.elapsed = 0
		}
	}
	return c.phase != phaseIdle
}

func (c contentTransition) settle() contentTransition {
	return newContentTransition(c.target)
}

// offset is the card's left margin: it slides in from 0 to slideCols and
// leaves toward 2*slideCols.
func (c contentTransition) offset() int {
	switch c.phase {
	case phaseExit:
		return slideCols + int(float64(slideCols)*progress(c.elapsed, contentExitDuration)+0.5)
	case phaseEnter:
		return int(float64(slideCols)*progress(c.elapsed, contentEnterDuration) + 0.5)
	default:
		return slideCols
	}
}

func (c contentTransition) opacity() float64 {
	switch c.phase {
	case phaseExit:
		return 1 - progress(c.elapsed, contentExitDuration)
	case phaseEnter:
		return progress(c.elapsed, contentEnterDuration)
	default:
		return 1
	}
}

// connectorFills holds how long each connector between markers has been
// filling. Connector i sits between step i+1 and step i+2.
type connectorFills []time.Duration

func newConnectorFills(steps int) connectorFills {
	if steps < 2 {
		return nil
	}
	return make(connectorFills, steps-1)
}

// fraction is how much of connector i is drawn filled.
func (f connectorFills) fraction(i int) float64 {
	return progress(f[i], connectorFillDuration)
}

// advance fills connectors whose following step is completed and reports
// whether any is still filling.
func (f connectorFills) advance(dt time.Duration, completed func(id int) bool) bool {
	running := false
	for i := range f {
		if !completed(i+2) || f[i] >= connectorFillDuration {
			continue
		}
		f[i] = min(f[i]+dt, connectorFillDuration)
		if f[i] < connectorFillDuration {
			running = true
		}
	}
	return running
}

// pending reports whether any connector still has filling to do.
func (f connectorFills) pending(completed func(id int) bool) bool {
	for i := range f {
		if completed(i+2) && f[i] < connectorFillDuration {
			return true
		}
	}
	return false
}

// settle fills every connector that should be filled.
func (f connectorFills) settle(completed func(id int) bool) {
	for i := range f {
		if completed(i + 2) {
			f[i] = connectorFillDuration
		}
	}
}

// consoleEntrance tracks whether the console is mounted and how far its
// delayed entrance has progressed. It only replays when the console goes
// from absent to present.
type consoleEntrance struct {
	mounted bool
	elapsed time.Duration
}

const consoleEntranceTotal = consoleDelay + consoleFadeDuration

// sync mounts or unmounts the console and reports whether frames are needed.
func (c *consoleEntrance) sync(present, animate bool) bool {
	if !present {
		*c = consoleEntrance{}
		return false
	}
	if c.mounted {
		return false
	}
	c.mounted = true
	if !animate {
		c.elapsed = consoleEntranceTotal
		return false
	}
	c.elapsed = 0
	return true
}

func (c *consoleEntrance) advance(dt time.Duration) bool {
	if !c.mounted || c.elapsed >= consoleEntranceTotal {
		return false
	}
	c.elapsed += dt
	return c.elapsed < consoleEntranceTotal
}

func (c *consoleEntrance) settle() {
	if c.mounted {
		c.elapsed = consoleEntranceTotal
	}
}

func (c consoleEntrance) opacity() float64 {
	if !c.mounted || c.elapsed < consoleDelay {
		return 0
	}
	return progress(c.elapsed-consoleDelay, consoleFadeDuration)
}

// lowered reports whether the console still sits one row below its resting
// place (the slide-up half of its entrance).
func (c consoleEntrance) lowered() bool {
	return c.mounted && c.opacity() < 0.5
}
