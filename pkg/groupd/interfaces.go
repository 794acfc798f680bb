package groupd

import (
	"context"
	"net"

	"github.com/sierrasoftworks/humane-errors-go"
)

// Querier is the membership query API of groupd.
type Querier interface {
	// Groups returns up to max groups in the order groupd reports them.
	Groups(ctx context.Context, max int) ([]Group, humane.Error)

	// Group returns the group identified by level and name.
	Group(ctx context.Context, level int, name string) (*Group, humane.Error)
}

// Dumper fetches groupd's raw diagnostic buffer.
type Dumper interface {
	// Dump returns the bytes of a single read of the daemon's reply. An
	// empty slice with a nil error means the daemon closed the connection
	// without sending anything.
	Dump(ctx context.Context) ([]byte, humane.Error)
}

// Dialer opens stream connections. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}
