package main

import (
	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/go-otel-utils/otelzap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Write the groupd debug dump to stdout",
		Long: `Ask groupd for its debug buffer and write the reply to stdout unchanged.

An empty reply prints nothing and still succeeds.`,
		Example: `$ group_tool dump > groupd.dump`,
		Args:    cobra.ArbitraryArgs,
		RunE:    runDump,
	}
}

func runDump(c *cobra.Command, _ []string) error {
	data, herr := newGroupdClient().Dump(c.Context())
	if herr != nil {
		return herr
	}

	if len(data) == 0 {
		otelzap.L().Debug("groupd sent an empty dump")
		return nil
	}

	n, err := c.OutOrStdout().Write(data)
	if err != nil {
		return humane.Wrap(err, "failed to write the dump to stdout", "check that stdout is writable")
	}
	otelzap.L().Debug("dump written", zap.Int("bytes", n))
	return nil
}
