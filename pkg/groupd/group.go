package groupd

import "fmt"

// Group is one membership group as reported by groupd. It is filled by a
// query and never mutated afterwards.
type Group struct {
	ClientName  string     `msgpack:"client_name" json:"client_name"`
	Level       int        `msgpack:"level" json:"level"`
	Name        string     `msgpack:"name" json:"name"`
	ID          uint32     `msgpack:"id" json:"id"`
	EventState  EventState `msgpack:"event_state" json:"event_state"`
	EventNodeID int        `msgpack:"event_nodeid" json:"event_nodeid"`
	Members     []int      `msgpack:"members" json:"members"`
}

// MemberCount returns the number of member node ids.
func (g *Group) MemberCount() int {
	return len(g.Members)
}

// HasEvent reports whether the group is in the middle of a transition.
func (g *Group) HasEvent() bool {
	return g.EventState != EventStateNone || g.EventNodeID != 0
}

// StateString renders the event column: "none" when no event is active,
// otherwise "<STATE> node <nodeid>".
func (g *Group) StateString() string {
	if !g.HasEvent() {
		return "none"
	}
	return fmt.Sprintf("%s node %d", g.EventState, g.EventNodeID)
}
