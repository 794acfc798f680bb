package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeOperation(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOp   Operation
		wantRest []string
	}{
		{name: "no args", args: nil, wantOp: OpList, wantRest: nil},
		{name: "ls", args: []string{"ls"}, wantOp: OpList, wantRest: []string{}},
		{name: "list with group", args: []string{"list", "0", "default"}, wantOp: OpList, wantRest: []string{"0", "default"}},
		{name: "dump", args: []string{"dump"}, wantOp: OpDump, wantRest: []string{}},
		{name: "leading junk is skipped", args: []string{"foo", "bar", "dump", "x"}, wantOp: OpDump, wantRest: []string{"x"}},
		{name: "first match wins", args: []string{"ls", "dump"}, wantOp: OpList, wantRest: []string{"dump"}},
		{name: "dump before ls", args: []string{"dump", "ls"}, wantOp: OpDump, wantRest: []string{"ls"}},
		{name: "no token defaults to ls", args: []string{"foo", "1", "bar"}, wantOp: OpList, wantRest: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, rest := DecodeOperation(tt.args)
			assert.Equal(t, tt.wantOp, op)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestOperationString(t *testing.T) {
	assert.Equal(t, "ls", OpList.String())
	assert.Equal(t, "dump", OpDump.String())
	assert.Equal(t, "unknown", Operation(0).String())
}
