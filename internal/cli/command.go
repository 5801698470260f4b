package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/diskspace/internal/diskspace"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}

// Command builds the root command.
//
//nolint:funlen // Flag definitions
func (c CLI) Command() *cobra.Command {
	var (
		options diskspace.Options
		order   string
	)

	allowedSources := []string{"du", "walk"}

	cmd := &cobra.Command{
		Use:   "diskspace [flags] [directory]",
		Short: "Analyzes and reports the disk usage per folder",
		Long: heredoc.Doc(`
			diskspace analyzes and reports the disk usage per folder.

			Sizes are listed largest first within each folder, with the percentage
			of the analyzed directory's total. By default only the directory and
			its direct subfolders are shown; use --depth to go deeper or --all for
			the full tree.

			Positional Arguments:
			  directory              Directory to analyze. Defaults to current directory if not specified.

			Sources:
			  du     runs the system du utility (default)
			  walk   walks the tree natively in parallel
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if options.Version {
				fmt.Fprintln(cmd.OutOrStdout(), c.version)

				return nil
			}

			parsed, err := diskspace.ParseOrder(order)
			if err != nil {
				return err
			}

			options.Order = parsed

			if !slices.Contains(allowedSources, options.Source) {
				return fmt.Errorf("invalid source %q: must be one of %v", options.Source, allowedSources)
			}

			if options.Depth < 0 {
				return errors.New("depth cannot be negative")
			}

			if options.Hide < 0 {
				return errors.New("hide cannot be negative")
			}

			options.Path = "."
			if len(args) > 0 {
				options.Path = args[0]
			}

			options.Log = cmd.ErrOrStderr()

			return logic(cmd.Context(), cmd.OutOrStdout(), options)
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.StringVarP(&order, "order", "o", "desc", "The file order inside each folder: desc or asc")
	flags.IntVarP(&options.Hide, "hide", "s", 0, "Hides all files that have a percentage lower than this value")
	flags.BoolVarP(&options.All, "all", "a", false, "Shows the full tree")
	flags.IntVarP(&options.Depth, "depth", "d", 1, "Specifies the folder maximum depth to be analyzed")
	flags.BoolVarP(&options.TreeView, "tree-view", "t", false, "Display the result in a tree mode")
	flags.StringVar(&options.Source, "source", "du", "Measurement source: du or walk")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")

	cmd.MarkFlagsMutuallyExclusive("all", "depth")

	return cmd
}
