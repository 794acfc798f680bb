package listing

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spechtlabs/grouptool/pkg/groupd"
	"sigs.k8s.io/yaml"
)

// groupView is the structured form of a group, with the rendered state.
type groupView struct {
	Type        string `json:"type"`
	Level       int    `json:"level"`
	Name        string `json:"name"`
	ID          string `json:"id"`
	EventState  int    `json:"event_state"`
	EventNodeID int    `json:"event_nodeid"`
	State       string `json:"state"`
	MemberCount int    `json:"member_count"`
	Members     []int  `json:"members"`
}

func newGroupViews(groups []groupd.Group) []groupView {
	views := make([]groupView, 0, len(groups))
	for i := range groups {
		g := &groups[i]
		members := g.Members
		if members == nil {
			members = []int{}
		}
		views = append(views, groupView{
			Type:        g.ClientName,
			Level:       g.Level,
			Name:        g.Name,
			ID:          fmt.Sprintf("%0*x", idWidth, g.ID),
			EventState:  int(g.EventState),
			EventNodeID: g.EventNodeID,
			State:       g.StateString(),
			MemberCount: g.MemberCount(),
			Members:     members,
		})
	}
	return views
}

func WriteJSON(w io.Writer, groups []groupd.Group) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newGroupViews(groups))
}

func WriteYAML(w io.Writer, groups []groupd.Group) error {
	data, err := yaml.Marshal(newGroupViews(groups))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Write renders groups in the given format.
func Write(w io.Writer, format Format, groups []groupd.Group) error {
	switch format {
	case FormatTable:
		return WriteTable(w, groups)
	case FormatJSON:
		return WriteJSON(w, groups)
	case FormatYAML:
		return WriteYAML(w, groups)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
