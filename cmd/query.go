package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anisan-cli/anigraph/anilist"
	"github.com/anisan-cli/anigraph/color"
	"github.com/anisan-cli/anigraph/icon"
	"github.com/anisan-cli/anigraph/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringP("kind", "k", "", "Print the continuation query of a connection kind")
	queryCmd.Flags().IntP("page", "p", anilist.ContinuationStartPage, "Page embedded in the continuation query")
	queryCmd.Flags().BoolP("list", "l", false, "List the names of the static queries")
	queryCmd.MarkFlagsMutuallyExclusive("kind", "list")

	lo.Must0(queryCmd.RegisterFlagCompletionFunc("kind", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(anilist.ConnectionKinds, func(k anilist.ConnectionKind, _ int) string {
			return k.String()
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

// queryCmd prints the GraphQL documents sent to the API.
var queryCmd = &cobra.Command{
	Use:   "query [name]",
	Short: "Print the GraphQL documents sent to the API",
	Args:  cobra.MaximumNArgs(1),
	ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return queryNames(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if lo.Must(cmd.Flags().GetBool("list")) {
			for _, name := range queryNames() {
				cmd.Println(name)
			}
			return nil
		}

		var document string
		switch kind := lo.Must(cmd.Flags().GetString("kind")); {
		case kind != "":
			connection, err := anilist.ParseConnectionKind(kind)
			if err != nil {
				return err
			}

			page := lo.Must(cmd.Flags().GetInt("page"))
			if page < 1 {
				return fmt.Errorf("invalid page %d", page)
			}

			document = anilist.ConnectionQuery(connection, page)
		case len(args) == 1:
			q, ok := anilist.Queries()[args[0]]
			if !ok {
				return fmt.Errorf("unknown query %q, expected one of %s", args[0], strings.Join(queryNames(), ", "))
			}

			document = q
		default:
			return fmt.Errorf("either a query name, --kind or --list is required")
		}

		if err := anilist.ValidateQuery(document); err != nil {
			cmd.PrintErrf("%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), err)
		}

		cmd.Println(document)
		return nil
	},
}

func queryNames() []string {
	names := lo.Keys(anilist.Queries())
	sort.Strings(names)
	return names
}
