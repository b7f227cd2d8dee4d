package search

import "errors"

var (
	// ErrGoalNotFound reports an exhausted frontier without reaching a goal.
	// The only recoverable failure; callers typically report "no path".
	ErrGoalNotFound = errors.New("goal not found")

	// ErrDuplicateState reports a Push for a state already on the frontier.
	// Indicates a bug in the driver or the client.
	ErrDuplicateState = errors.New("frontier already contains state")

	// ErrFrontierDesync reports a violated map/queue invariant. Indicates a
	// bug in the frontier.
	ErrFrontierDesync = errors.New("frontier map and queue out of sync")

	// ErrLookupMiss reports that Pop could not find the queue head in the
	// lookup table. Not theoretically possible; indicates a bug.
	ErrLookupMiss = errors.New("state missing from frontier lookup table")
)
