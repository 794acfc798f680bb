package groupd

// peerCred identifies the process on the other end of the daemon socket.
type peerCred struct {
	pid int32
	uid uint32
	gid uint32
}
