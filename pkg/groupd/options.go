package groupd

import "time"

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithSocketName sets the abstract socket name, without the leading '@'.
func WithSocketName(name string) ClientOption {
	return func(c *Client) {
		if name != "" {
			c.socketName = name
		}
	}
}

// WithTimeout bounds every request. Zero keeps the default of waiting forever.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) { c.timeout = timeout }
}

// WithDumpSize sets the size of the dump read buffer.
func WithDumpSize(size int) ClientOption {
	return func(c *Client) {
		if size > 0 {
			c.dumpSize = size
		}
	}
}

// WithDialer replaces the dialer used to reach the daemon.
func WithDialer(dialer Dialer) ClientOption {
	return func(c *Client) { c.dialer = dialer }
}
