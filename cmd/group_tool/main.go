package main

import (
	"context"
	"io"
	"os"

	"github.com/spechtlabs/grouptool/internal/cli/cmd"
	"github.com/spechtlabs/grouptool/internal/cli/exit"
	"github.com/spechtlabs/grouptool/internal/cli/pretty_print"
	"github.com/spechtlabs/grouptool/internal/utils"
	"github.com/spechtlabs/grouptool/pkg/groupd"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// groupdClient is everything the commands need from groupd.
type groupdClient interface {
	groupd.Querier
	groupd.Dumper
}

var newGroupdClient = func() groupdClient {
	return groupd.NewClient(
		groupd.WithSocketName(viper.GetString("groupd.socket")),
		groupd.WithTimeout(viper.GetDuration("groupd.timeout")),
	)
}

func main() {
	ctx, cancel := context.WithCancelCause(context.Background())
	utils.InterruptHandler(ctx, cancel)

	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel(nil)
	os.Exit(code)
}

func newRootCmd() *cobra.Command {
	cmdRoot := cmd.NewRootCmd(runOperation)
	cmdRoot.AddCommand(newLsCmd())
	cmdRoot.AddCommand(newDumpCmd())
	cmdRoot.AddCommand(newConfigCmd())
	cmd.PropagateVersion(cmdRoot, cmd.VersionLine(cmd.Name))
	return cmdRoot
}

func runOperation(c *cobra.Command, op cmd.Operation, args []string) error {
	switch op {
	case cmd.OpDump:
		return runDump(c, args)
	default:
		return runList(c, args)
	}
}

// execute runs the command tree and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmdRoot := newRootCmd()
	cmdRoot.SetArgs(args)
	cmdRoot.SetOut(stdout)
	cmdRoot.SetErr(stderr)
	defer cmd.Shutdown()

	if err := cmdRoot.ExecuteContext(ctx); err != nil {
		pretty_print.SetOutput(stdout, stderr)
		pretty_print.PrintError(err)
		return exit.CodeOf(err)
	}
	return exit.CodeSuccess
}
