package listing

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spechtlabs/grouptool/pkg/groupd"
)

// Column widths of the group table.
const (
	typeWidth  = 16
	levelWidth = 5
	nameWidth  = 32
	idWidth    = 8
	stateWidth = 12
)

// WriteHeader writes the table header row.
func WriteHeader(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%-*s %-*s %-*s %-*s %-*s\n",
		typeWidth, "type",
		levelWidth, "level",
		nameWidth, "name",
		idWidth, "id",
		stateWidth, "state",
	)
	return err
}

// WriteGroup writes one group row followed by its bracketed member list.
func WriteGroup(w io.Writer, g *groupd.Group) error {
	if _, err := fmt.Fprintf(w, "%-*s %-*d %-*s %0*x %-*s\n",
		typeWidth, g.ClientName,
		levelWidth, g.Level,
		nameWidth, g.Name,
		idWidth, g.ID,
		stateWidth, g.StateString(),
	); err != nil {
		return err
	}

	_, err := io.WriteString(w, MemberList(g.Members)+"\n")
	return err
}

// WriteTable writes the header and every group in the given order.
func WriteTable(w io.Writer, groups []groupd.Group) error {
	if err := WriteHeader(w); err != nil {
		return err
	}
	for i := range groups {
		if err := WriteGroup(w, &groups[i]); err != nil {
			return err
		}
	}
	return nil
}

// MemberList renders node ids as "[1 2 3]".
func MemberList(members []int) string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = strconv.Itoa(m)
	}
	return "[" + strings.Join(ids, " ") + "]"
}
