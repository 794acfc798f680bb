package mock

import (
	"context"
	"fmt"

	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/grouptool/pkg/groupd"
	"github.com/spechtlabs/grouptool/pkg/test"
)

type MockGroupdOption func(*MockGroupd)

func WithGroups(groups ...groupd.Group) MockGroupdOption {
	return func(m *MockGroupd) { m.groups = append(m.groups, groups...) }
}

func WithQueryError(err humane.Error) MockGroupdOption {
	return func(m *MockGroupd) { m.queryErr = err }
}

func WithDump(data []byte) MockGroupdOption {
	return func(m *MockGroupd) { m.dump = data }
}

func WithDumpError(err humane.Error) MockGroupdOption {
	return func(m *MockGroupd) { m.dumpErr = err }
}

// MockGroupd is an in-memory stand-in for the groupd client.
type MockGroupd struct {
	*test.CallTracker

	groups   []groupd.Group
	queryErr humane.Error
	dump     []byte
	dumpErr  humane.Error
}

var (
	_ groupd.Querier = (*MockGroupd)(nil)
	_ groupd.Dumper  = (*MockGroupd)(nil)
)

func NewMockGroupd(opts ...MockGroupdOption) *MockGroupd {
	m := &MockGroupd{
		CallTracker: test.NewCallTracker(),
		groups:      make([]groupd.Group, 0),
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MockGroupd) Groups(_ context.Context, max int) ([]groupd.Group, humane.Error) {
	m.Record("Groups", max)
	if m.queryErr != nil {
		return nil, m.queryErr
	}

	n := min(max, len(m.groups))
	out := make([]groupd.Group, n)
	copy(out, m.groups[:n])
	return out, nil
}

func (m *MockGroupd) Group(_ context.Context, level int, name string) (*groupd.Group, humane.Error) {
	m.Record("Group", level, " ", name)
	if m.queryErr != nil {
		return nil, m.queryErr
	}

	for _, g := range m.groups {
		if g.Level == level && g.Name == name {
			found := g
			return &found, nil
		}
	}
	return nil, humane.Wrap(fmt.Errorf("%w: no group %q at level %d", groupd.ErrDaemon, name, level), "group not found")
}

func (m *MockGroupd) Dump(_ context.Context) ([]byte, humane.Error) {
	m.Record("Dump")
	if m.dumpErr != nil {
		return nil, m.dumpErr
	}
	return m.dump, nil
}
