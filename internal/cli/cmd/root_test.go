package cmd

import (
	"bytes"
	"testing"

	"github.com/spechtlabs/grouptool/internal/cli/exit"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionLine(t *testing.T) {
	orig := Date
	t.Cleanup(func() { Date = orig })

	Date = ""
	assert.Equal(t, "group_tool (built unknown)\n", VersionLine(Name))

	Date = "2024-05-01T10:00:00Z"
	assert.Equal(t, "group_tool (built 2024-05-01T10:00:00Z)\n", VersionLine(Name))
}

func TestRootDispatch(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOp   Operation
		wantArgs []string
	}{
		{name: "default", args: nil, wantOp: OpList, wantArgs: nil},
		{name: "dump token", args: []string{"x", "dump"}, wantOp: OpDump, wantArgs: []string{}},
		{name: "ls token with flags", args: []string{"--strict", "foo", "ls", "0", "default"}, wantOp: OpList, wantArgs: []string{"0", "default"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			t.Setenv("HOME", t.TempDir())

			var gotOp Operation
			var gotArgs []string
			root := NewRootCmd(func(cmd *cobra.Command, op Operation, args []string) error {
				gotOp, gotArgs = op, args
				return nil
			})
			root.SetArgs(tt.args)
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})
			defer Shutdown()

			require.NoError(t, root.Execute())
			assert.Equal(t, tt.wantOp, gotOp)
			assert.Equal(t, tt.wantArgs, gotArgs)
		})
	}
}

func TestRootFlagError(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := NewRootCmd(func(*cobra.Command, Operation, []string) error { return nil })
	root.SetArgs([]string{"-x"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Equal(t, exit.CodeUsage, exit.CodeOf(err))
	assert.Contains(t, err.Error(), "Please use '-h' for usage.")
}

func TestFlagErrorAfterHelpOrVersion(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOut  string
		wantCode int
	}{
		{name: "version first", args: []string{"-V", "-x"}, wantOut: VersionLine(Name)},
		{name: "help first", args: []string{"-h", "-x"}, wantOut: Name},
		{name: "invalid flag first", args: []string{"-x", "-V"}, wantCode: exit.CodeUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			t.Setenv("HOME", t.TempDir())

			called := false
			root := NewRootCmd(func(*cobra.Command, Operation, []string) error {
				called = true
				return nil
			})
			var out bytes.Buffer
			root.SetArgs(tt.args)
			root.SetOut(&out)
			root.SetErr(&bytes.Buffer{})

			err := root.Execute()
			assert.Equal(t, tt.wantCode, exit.CodeOf(err))
			assert.False(t, called)
			if tt.wantOut != "" {
				assert.Contains(t, out.String(), tt.wantOut)
			}
		})
	}
}
