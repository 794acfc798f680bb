//go:build linux

package groupd

import (
	"errors"
	"net"

	"golang.org/x/sys/unix"
)

func peerCredentials(conn net.Conn) (*peerCred, error) {
	uc, ok := conn.(*net.UnixConn)
	if !ok {
		return nil, errors.New("not a unix socket connection")
	}

	raw, err := uc.SyscallConn()
	if err != nil {
		return nil, err
	}

	var ucred *unix.Ucred
	var credErr error
	if err := raw.Control(func(fd uintptr) {
		ucred, credErr = unix.GetsockoptUcred(int(fd), unix.SOL_SOCKET, unix.SO_PEERCRED)
	}); err != nil {
		return nil, err
	}
	if credErr != nil {
		return nil, credErr
	}

	return &peerCred{pid: ucred.Pid, uid: ucred.Uid, gid: ucred.Gid}, nil
}
