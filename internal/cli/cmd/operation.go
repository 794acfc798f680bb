package cmd

// Operation is the sub-command selected on the command line.
type Operation int

const (
	OpList Operation = iota + 1
	OpDump
)

func (o Operation) String() string {
	switch o {
	case OpList:
		return "ls"
	case OpDump:
		return "dump"
	default:
		return "unknown"
	}
}

// DecodeOperation scans positional arguments left to right for the first
// "dump", "ls" or "list" token. It returns the selected operation and the
// arguments that follow the token. Without a match it selects OpList with
// no arguments.
func DecodeOperation(args []string) (Operation, []string) {
	for i, arg := range args {
		switch arg {
		case "dump":
			return OpDump, args[i+1:]
		case "ls", "list":
			return OpList, args[i+1:]
		}
	}
	return OpList, nil
}
