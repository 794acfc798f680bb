//go:build !linux

package groupd

import (
	"errors"
	"net"
)

func peerCredentials(_ net.Conn) (*peerCred, error) {
	return nil, errors.New("peer credentials are only available on linux")
}
