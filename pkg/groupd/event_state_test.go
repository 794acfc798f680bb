package groupd_test

import (
	"testing"

	"github.com/spechtlabs/grouptool/pkg/groupd"
	"github.com/stretchr/testify/assert"
)

func TestEventStateString(t *testing.T) {
	t.Parallel()

	want := []string{
		"JOIN_BEGIN", "JOIN_STOP_WAIT", "JOIN_ALL_STOPPED", "JOIN_START_WAIT", "JOIN_ALL_STARTED",
		"LEAVE_BEGIN", "LEAVE_STOP_WAIT", "LEAVE_ALL_STOPPED", "LEAVE_START_WAIT", "LEAVE_ALL_STARTED",
		"FAIL_BEGIN", "FAIL_STOP_WAIT", "FAIL_ALL_STOPPED", "FAIL_START_WAIT", "FAIL_ALL_STARTED",
	}

	states := groupd.AllEventStates()
	assert.Len(t, states, 15)
	for i, s := range states {
		assert.Equal(t, groupd.EventState(i+1), s)
		assert.Equal(t, want[i], s.String())
		assert.True(t, s.Known())
	}

	for _, code := range []int{0, 16, -1, 1000} {
		s := groupd.EventState(code)
		assert.Equal(t, "unknown", s.String(), "code %d", code)
		assert.False(t, s.Known())
		assert.Equal(t, code, int(s))
	}
}

func TestGroupStateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state groupd.EventState
		node  int
		want  string
	}{
		{name: "no event", state: groupd.EventStateNone, node: 0, want: "none"},
		{name: "join begin", state: groupd.EventStateJoinBegin, node: 3, want: "JOIN_BEGIN node 3"},
		{name: "state without node", state: groupd.EventStateFailAllStarted, node: 0, want: "FAIL_ALL_STARTED node 0"},
		{name: "node without state", state: groupd.EventStateNone, node: 7, want: "unknown node 7"},
		{name: "unknown code", state: groupd.EventState(42), node: 1, want: "unknown node 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &groupd.Group{EventState: tt.state, EventNodeID: tt.node}
			assert.Equal(t, tt.want, g.StateString())
			assert.Equal(t, tt.want != "none", g.HasEvent())
		})
	}
}

func TestGroupMemberCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, (&groupd.Group{}).MemberCount())
	assert.Equal(t, 3, (&groupd.Group{Members: []int{1, 2, 3}}).MemberCount())
}
