package groupd

// EventState is the phase of a join, leave or failure-recovery transition
// that groupd reports for a group. The numeric values are assigned by the
// daemon and must stay in sync with it.
type EventState int

const (
	EventStateNone EventState = iota
	EventStateJoinBegin
	EventStateJoinStopWait
	EventStateJoinAllStopped
	EventStateJoinStartWait
	EventStateJoinAllStarted
	EventStateLeaveBegin
	EventStateLeaveStopWait
	EventStateLeaveAllStopped
	EventStateLeaveStartWait
	EventStateLeaveAllStarted
	EventStateFailBegin
	EventStateFailStopWait
	EventStateFailAllStopped
	EventStateFailStartWait
	EventStateFailAllStarted
)

const unknownEventState = "unknown"

var eventStateNames = map[EventState]string{
	EventStateJoinBegin:       "JOIN_BEGIN",
	EventStateJoinStopWait:    "JOIN_STOP_WAIT",
	EventStateJoinAllStopped:  "JOIN_ALL_STOPPED",
	EventStateJoinStartWait:   "JOIN_START_WAIT",
	EventStateJoinAllStarted:  "JOIN_ALL_STARTED",
	EventStateLeaveBegin:      "LEAVE_BEGIN",
	EventStateLeaveStopWait:   "LEAVE_STOP_WAIT",
	EventStateLeaveAllStopped: "LEAVE_ALL_STOPPED",
	EventStateLeaveStartWait:  "LEAVE_START_WAIT",
	EventStateLeaveAllStarted: "LEAVE_ALL_STARTED",
	EventStateFailBegin:       "FAIL_BEGIN",
	EventStateFailStopWait:    "FAIL_STOP_WAIT",
	EventStateFailAllStopped:  "FAIL_ALL_STOPPED",
	EventStateFailStartWait:   "FAIL_START_WAIT",
	EventStateFailAllStarted:  "FAIL_ALL_STARTED",
}

// String returns the daemon's name for the state, or "unknown" for codes
// outside the named range (including 0).
func (s EventState) String() string {
	if name, ok := eventStateNames[s]; ok {
		return name
	}
	return unknownEventState
}

// Known reports whether s is one of the named transition phases.
func (s EventState) Known() bool {
	_, ok := eventStateNames[s]
	return ok
}

// AllEventStates returns the named states in ascending order.
func AllEventStates() []EventState {
	states := make([]EventState, 0, len(eventStateNames))
	for s := EventStateJoinBegin; s <= EventStateFailAllStarted; s++ {
		states = append(states, s)
	}
	return states
}
