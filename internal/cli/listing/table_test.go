package listing

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spechtlabs/grouptool/pkg/groupd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-len(s))
}

var wantHeader = pad("type", 16) + " " + pad("level", 5) + " " + pad("name", 32) + " " + pad("id", 8) + " " + pad("state", 12) + "\n"

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf))
	assert.Equal(t, wantHeader, buf.String())
}

func TestWriteTable(t *testing.T) {
	tests := []struct {
		name   string
		groups []groupd.Group
		want   string
	}{
		{
			name:   "no groups",
			groups: nil,
			want:   wantHeader,
		},
		{
			name: "single idle group",
			groups: []groupd.Group{
				{ClientName: "fence", Level: 0, Name: "default", ID: 0x1, Members: []int{1, 2}},
			},
			want: wantHeader +
				pad("fence", 16) + " " + pad("0", 5) + " " + pad("default", 32) + " 00000001 " + pad("none", 12) + "\n" +
				"[1 2]\n",
		},
		{
			name: "event and empty members keep input order",
			groups: []groupd.Group{
				{ClientName: "gfs", Level: 2, Name: "data", ID: 0xabc, EventState: groupd.EventStateJoinBegin, EventNodeID: 3},
				{ClientName: "dlm", Level: 1, Name: "clvmd", ID: 0x10002, Members: []int{4}},
			},
			want: wantHeader +
				pad("gfs", 16) + " " + pad("2", 5) + " " + pad("data", 32) + " 00000abc " + "JOIN_BEGIN node 3" + "\n" +
				"[]\n" +
				pad("dlm", 16) + " " + pad("1", 5) + " " + pad("clvmd", 32) + " 00010002 " + pad("none", 12) + "\n" +
				"[4]\n",
		},
		{
			name: "long values are not truncated",
			groups: []groupd.Group{
				{ClientName: "a-very-long-client-name", Level: 123456, Name: "n", ID: 0xdeadbeef, EventState: groupd.EventState(99), EventNodeID: 1},
			},
			want: wantHeader +
				"a-very-long-client-name 123456 " + pad("n", 32) + " deadbeef unknown node 1\n" +
				"[]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteTable(&buf, tt.groups))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteTableRowCount(t *testing.T) {
	groups := make([]groupd.Group, groupd.DefaultMaxGroups)
	for i := range groups {
		groups[i] = groupd.Group{Name: "g", Level: i, Members: []int{i}}
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, groups))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1+2*len(groups))
}

func TestMemberList(t *testing.T) {
	assert.Equal(t, "[]", MemberList(nil))
	assert.Equal(t, "[7]", MemberList([]int{7}))
	assert.Equal(t, "[3 1 2]", MemberList([]int{3, 1, 2}))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatTable},
		{input: "table", want: FormatTable},
		{input: " JSON ", want: FormatJSON},
		{input: "yml", want: FormatYAML},
		{input: "yaml", want: FormatYAML},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteStructured(t *testing.T) {
	groups := []groupd.Group{
		{ClientName: "fence", Level: 0, Name: "default", ID: 0x1, EventState: groupd.EventStateLeaveBegin, EventNodeID: 2, Members: []int{1, 2}},
		{ClientName: "dlm", Level: 1, Name: "clvmd", ID: 0x2},
	}

	var jsonBuf bytes.Buffer
	require.NoError(t, Write(&jsonBuf, FormatJSON, groups))

	var fromJSON []groupView
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &fromJSON))
	require.Len(t, fromJSON, 2)
	assert.Equal(t, "LEAVE_BEGIN node 2", fromJSON[0].State)
	assert.Equal(t, "00000001", fromJSON[0].ID)
	assert.Equal(t, []int{}, fromJSON[1].Members)

	var yamlBuf bytes.Buffer
	require.NoError(t, Write(&yamlBuf, FormatYAML, groups))

	var fromYAML []groupView
	require.NoError(t, yaml.Unmarshal(yamlBuf.Bytes(), &fromYAML))
	assert.Equal(t, fromJSON, fromYAML)
}
