package groupd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/go-otel-utils/otelzap"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

// queryReply is the envelope groupd answers get_groups and get_group with.
type queryReply struct {
	Error  string  `msgpack:"error,omitempty"`
	Groups []Group `msgpack:"groups"`
}

// Client talks to groupd over its abstract Unix domain socket. Every call
// opens a fresh connection, sends one request and reads one reply.
type Client struct {
	socketName string
	timeout    time.Duration
	dumpSize   int
	dialer     Dialer
}

var (
	_ Querier = (*Client)(nil)
	_ Dumper  = (*Client)(nil)
)

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		socketName: DefaultSocketName,
		timeout:    0,
		dumpSize:   DumpSize,
		dialer:     &net.Dialer{},
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Address returns the dial address, '@' marking the abstract namespace.
func (c *Client) Address() string {
	return "@" + c.socketName
}

func (c *Client) Dump(ctx context.Context) ([]byte, humane.Error) {
	conn, herr := c.connect(ctx)
	if herr != nil {
		return nil, herr
	}
	defer func() { _ = conn.Close() }()
	defer c.watch(ctx, conn)()

	if herr := writeRequest(conn, DumpRequest); herr != nil {
		return nil, herr
	}

	buf := make([]byte, c.dumpSize)
	n, err := conn.Read(buf)
	if n > 0 {
		otelzap.L().Debug("received groupd dump", zap.Int("bytes", n))
		return buf[:n], nil
	}

	if err == nil || errors.Is(err, io.EOF) {
		otelzap.L().Debug("groupd closed the connection without dump data")
		return nil, nil
	}

	return nil, humane.Wrap(fmt.Errorf("%w: %w", ErrRead, err), "failed to read the dump from groupd",
		"check that groupd is still running",
		"retry with --debug for more details",
	)
}

func (c *Client) Groups(ctx context.Context, max int) ([]Group, humane.Error) {
	if max <= 0 {
		return nil, humane.New(fmt.Sprintf("invalid group limit %d", max), "use a limit greater than zero")
	}

	reply, herr := c.query(ctx, fmt.Sprintf("%s %d", getGroupsRequest, max))
	if herr != nil {
		return nil, herr
	}

	groups := reply.Groups
	if len(groups) > max {
		otelzap.L().Warn("groupd returned more groups than requested",
			zap.Int("requested", max),
			zap.Int("returned", len(groups)),
		)
		groups = groups[:max]
	}
	return groups, nil
}

func (c *Client) Group(ctx context.Context, level int, name string) (*Group, humane.Error) {
	if name == "" {
		return nil, humane.New("group name must not be empty", "pass both <level> and <name>")
	}

	reply, herr := c.query(ctx, fmt.Sprintf("%s %d %s", getGroupRequest, level, name))
	if herr != nil {
		return nil, herr
	}

	if len(reply.Groups) == 0 {
		return nil, humane.Wrap(fmt.Errorf("%w: no group %q at level %d", ErrDaemon, name, level), "group not found",
			"run 'group_tool ls' to see all groups known to groupd",
		)
	}
	return &reply.Groups[0], nil
}

func (c *Client) query(ctx context.Context, request string) (*queryReply, humane.Error) {
	conn, herr := c.connect(ctx)
	if herr != nil {
		return nil, herr
	}
	defer func() { _ = conn.Close() }()
	defer c.watch(ctx, conn)()

	if herr := writeRequest(conn, request); herr != nil {
		return nil, herr
	}

	reply := &queryReply{}
	dec := msgpack.NewDecoder(io.LimitReader(conn, int64(c.dumpSize)))
	if err := dec.Decode(reply); err != nil {
		if ctx.Err() != nil {
			return nil, humane.Wrap(fmt.Errorf("%w: %w", ErrRead, ctx.Err()), "query to groupd was cancelled")
		}
		return nil, humane.Wrap(fmt.Errorf("%w: %w", ErrDecode, err), "failed to decode the reply from groupd",
			"make sure group_tool and groupd are from the same release",
		)
	}

	if reply.Error != "" {
		return nil, humane.Wrap(fmt.Errorf("%w: %s", ErrDaemon, reply.Error), "groupd could not answer the query")
	}

	otelzap.L().Debug("groupd query answered",
		zap.String("request", request),
		zap.Int("groups", len(reply.Groups)),
	)
	return reply, nil
}

func (c *Client) connect(ctx context.Context) (net.Conn, humane.Error) {
	conn, err := c.dialer.DialContext(ctx, "unix", c.Address())
	if err != nil {
		return nil, humane.Wrap(fmt.Errorf("%w: %w", ErrConnect, err), "failed to connect to groupd",
			"check that groupd is running on this node",
			fmt.Sprintf("verify the socket name %q matches the daemon's", c.socketName),
		)
	}

	if c.timeout > 0 {
		if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
			_ = conn.Close()
			return nil, humane.Wrap(fmt.Errorf("%w: %w", ErrConnect, err), "failed to set the request timeout")
		}
	}

	if cred, err := peerCredentials(conn); err == nil {
		otelzap.L().Debug("connected to groupd",
			zap.String("socket", c.Address()),
			zap.Int32("pid", cred.pid),
			zap.Uint32("uid", cred.uid),
			zap.Uint32("gid", cred.gid),
		)
	} else {
		otelzap.L().Debug("connected to groupd", zap.String("socket", c.Address()), zap.NamedError("peercred_err", err))
	}

	return conn, nil
}

// watch unblocks pending I/O on conn once ctx is done. The returned func
// releases the watcher.
func (c *Client) watch(ctx context.Context, conn net.Conn) func() {
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Unix(1, 0))
	})
	return func() { stop() }
}

func writeRequest(conn net.Conn, request string) humane.Error {
	n, err := conn.Write([]byte(request))
	if err != nil || n != len(request) {
		cause := fmt.Errorf("%w: wrote %d of %d bytes", ErrIncompleteWrite, n, len(request))
		if err != nil {
			cause = fmt.Errorf("%w: %w", cause, err)
		}
		return humane.Wrap(cause, fmt.Sprintf("failed to send %q to groupd", request),
			"check that groupd is still running",
		)
	}
	return nil
}
