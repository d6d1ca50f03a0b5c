// Package walkthrough tracks which tutorial step is showing and which steps
// the user has reached.
//
// There is a single mutation, AdvanceTo. A request is accepted when it
// revisits a completed step or moves exactly one step past the frontier
// (the highest completed id); anything further ahead is silently ignored.
package walkthrough

import "sort"

// State is the session-scoped navigation state. The zero value is not
// usable; construct one with New.
type State struct {
	total     int
	current   int
	completed map[int]bool
	frontier  int
}

// New returns the initial state for a catalog of total steps: step 1 is
// current and completed.
func New(total int) *State {
	if total < 1 {
		total = 1
	}
	return &State{
		total:     total,
		current:   1,
		completed: map[int]bool{1: true},
		frontier:  1,
	}
}

// Replay builds a state by applying AdvanceTo for each id in order.
func Replay(total int, ids ...int) *State {
	s := New(total)
	for _, id := range ids {
		s.AdvanceTo(id)
	}
	return s
}

// AdvanceTo moves to target if it is at most one step past the frontier.
// It returns whether the move was accepted; a rejected move has no effect.
func (s *State) AdvanceTo(target int) bool {
	if !s.CanReach(target) {
		return false
	}
	s.current = target
	if !s.completed[target] {
		s.completed[target] = true
		if target > s.frontier {
			s.frontier = target
		}
	}
	return true
}

// Next advances one step unless the current step is the last.
func (s *State) Next() bool {
	if s.IsLast() {
		return false
	}
	return s.AdvanceTo(s.current + 1)
}

// Previous revisits the step before the current one.
func (s *State) Previous() bool {
	if s.current <= 1 {
		return false
	}
	return s.AdvanceTo(s.current - 1)
}

// CanReach reports whether AdvanceTo(target) would be accepted.
func (s *State) CanReach(target int) bool {
	return target >= 1 && target <= s.total && target <= s.frontier+1
}

// Current returns the id of the step being shown.
func (s *State) Current() int {
	return s.current
}

// Frontier returns the highest completed step id.
func (s *State) Frontier() int {
	return s.frontier
}

// Total returns the number of steps in the catalog this state was built for.
func (s *State) Total() int {
	return s.total
}

// IsLast reports whether the current step is the final one.
func (s *State) IsLast() bool {
	return s.current >= s.total
}

// IsCompleted reports whether id has been visited.
func (s *State) IsCompleted(id int) bool {
	return s.completed[id]
}

// Completed returns the visited ids in ascending order.
func (s *State) Completed() []int {
	out := make([]int, 0, len(s.completed))
	for id := range s.completed {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
