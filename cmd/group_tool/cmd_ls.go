package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spechtlabs/go-otel-utils/otelzap"
	"github.com/spechtlabs/grouptool/internal/cli/exit"
	"github.com/spechtlabs/grouptool/internal/cli/listing"
	"github.com/spechtlabs/grouptool/pkg/groupd"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls [<level> <name>]",
		Aliases: []string{"list"},
		Short:   "List the groups known to groupd",
		Long: `List the membership groups known to the local groupd.

With ` + "`<level> <name>`" + ` only that group is shown. Otherwise every group is listed, up to ` + "`--max-groups`" + `.

When the query fails the header is still printed. Use ` + "`--strict`" + ` to fail instead.`,
		Example: `# all groups
$ group_tool ls

# the fence domain
$ group_tool ls 0 default

# as YAML
$ group_tool ls -o yaml`,
		Args: cobra.ArbitraryArgs,
		RunE: runList,
	}
}

func runList(c *cobra.Command, args []string) error {
	ctx := c.Context()

	format, err := listing.ParseFormat(viper.GetString("output.format"))
	if err != nil {
		return exit.Usage(humane.Wrap(err, "invalid output format"))
	}

	var groups []groupd.Group
	var herr humane.Error
	querier := newGroupdClient()

	if len(args) >= 2 {
		level, err := strconv.Atoi(args[0])
		if err != nil {
			return exit.Usage(humane.Wrap(err, fmt.Sprintf("invalid group level %q", args[0]),
				"the level is an integer, e.g. 'group_tool ls 0 default'",
			))
		}
		groups, herr = queryGroup(ctx, querier, level, args[1])
	} else {
		maxGroups := viper.GetInt("groupd.maxGroups")
		if maxGroups <= 0 {
			return exit.Usage(humane.New(fmt.Sprintf("invalid --max-groups %d", maxGroups), "use a limit greater than zero"))
		}
		groups, herr = querier.Groups(ctx, maxGroups)
	}

	if herr != nil {
		if viper.GetBool("output.strict") {
			return exit.Query(herr)
		}
		warnQueryFailure(ctx, herr, len(groups))
	}

	if err := listing.Write(c.OutOrStdout(), format, groups); err != nil {
		return humane.Wrap(err, "failed to write the group listing", "check that stdout is writable")
	}
	return nil
}

func warnQueryFailure(ctx context.Context, herr humane.Error, groups int) {
	otelzap.L().WarnContext(ctx, "groupd query failed, listing without results",
		zap.Error(herr),
		zap.Int("groups", groups),
	)
}

// queryGroup always yields one record; a failed lookup yields a zero-valued one.
func queryGroup(ctx context.Context, querier groupd.Querier, level int, name string) ([]groupd.Group, humane.Error) {
	g, herr := querier.Group(ctx, level, name)
	if herr != nil {
		return []groupd.Group{{}}, herr
	}
	return []groupd.Group{*g}, nil
}
