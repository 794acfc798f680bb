package groupd

const (
	// DefaultSocketName is the abstract-namespace socket groupd listens on.
	DefaultSocketName = "groupd_socket"

	// DefaultMaxGroups is the number of groups requested by a bulk query.
	DefaultMaxGroups = 64

	// DumpSize is the size of the buffer the dump reply is read into.
	DumpSize = 1024 * 1024

	// DumpRequest is the literal request for the daemon's debug buffer.
	DumpRequest = "dump"

	getGroupsRequest = "get_groups"
	getGroupRequest  = "get_group"
)
