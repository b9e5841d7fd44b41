package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anisan-cli/anigraph/anilist"
	"github.com/anisan-cli/anigraph/query"
	"github.com/anisan-cli/anigraph/style"
	"github.com/anisan-cli/anigraph/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func typeFlag(cmd *cobra.Command) (anilist.MediaType, bool, error) {
	value := lo.Must(cmd.Flags().GetString("type"))
	if value == "" {
		return "", false, nil
	}

	mediaType, err := parseMediaType(value)
	return mediaType, err == nil, err
}

func completeMediaType(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{"anime", "manga"}, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(mediaCmd)
	mediaCmd.Flags().Int("id", 0, "Look the media up by its AniList id")
	mediaCmd.Flags().Int("mal", 0, "Look the media up by its MyAnimeList id")
	mediaCmd.Flags().StringP("type", "t", "", "Restrict the lookup to anime or manga")
	mediaCmd.MarkFlagsMutuallyExclusive("id", "mal")
	lo.Must0(mediaCmd.RegisterFlagCompletionFunc("type", completeMediaType))
}

var mediaCmd = &cobra.Command{
	Use:               "media [search]",
	Short:             "Look up an anime or manga with every one of its characters",
	Aliases:           []string{"anime", "manga"},
	ValidArgsFunction: completeSearch(query.ScopeMedia),
	RunE: func(cmd *cobra.Command, args []string) error {
		mediaType, typed, err := typeFlag(cmd)
		if err != nil {
			return err
		}

		var (
			c     = newClient()
			ctx   = cmd.Context()
			malID = lo.Must(cmd.Flags().GetInt("mal"))
		)

		if malID > 0 {
			var (
				media     *anilist.Media
				remaining int
			)
			if typed {
				media, remaining, err = c.MediaByMalIDAndTypeWithRateLimit(ctx, malID, mediaType)
			} else {
				media, remaining, err = c.MediaByMalIDWithRateLimit(ctx, malID)
			}
			return show(cmd, media, remaining, err, renderMedia)
		}

		id, search, err := idOrSearch(cmd, args)
		if err != nil {
			return err
		}

		if id > 0 {
			media, remaining, err := c.MediaByIDWithRateLimit(ctx, id)
			return show(cmd, media, remaining, err, renderMedia)
		}

		var (
			media     *anilist.Media
			remaining int
		)
		if typed {
			media, remaining, err = c.MediaBySearchAndTypeWithRateLimit(ctx, search, mediaType)
		} else {
			media, remaining, err = c.MediaBySearchWithRateLimit(ctx, search)
		}

		remember(cmd, query.ScopeMedia, search, media != nil)
		return show(cmd, media, remaining, err, renderMedia)
	},
}

func init() {
	mediaCmd.AddCommand(mediaSearchCmd)
	mediaSearchCmd.Flags().StringP("type", "t", "", "Restrict the search to anime or manga")
	mediaSearchCmd.Flags().IntP("page", "p", 1, "Page of results")
	mediaSearchCmd.Flags().Int("per-page", 10, "Results per page")
	lo.Must0(mediaSearchCmd.RegisterFlagCompletionFunc("type", completeMediaType))
}

var mediaSearchCmd = &cobra.Command{
	Use:               "search <search>",
	Short:             "List a page of media matching a search",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeSearch(query.ScopeMedia),
	RunE: func(cmd *cobra.Command, args []string) error {
		mediaType, typed, err := typeFlag(cmd)
		if err != nil {
			return err
		}

		var (
			search  = strings.Join(args, " ")
			page    = lo.Must(cmd.Flags().GetInt("page"))
			perPage = lo.Must(cmd.Flags().GetInt("per-page"))
			result  *anilist.Page
			c       = newClient()
		)

		var remaining int
		if typed {
			result, remaining, err = c.SearchMediaByTypeWithRateLimit(cmd.Context(), search, mediaType, page, perPage)
		} else {
			result, remaining, err = c.SearchMediaWithRateLimit(cmd.Context(), search, page, perPage)
		}

		remember(cmd, query.ScopeMedia, search, result != nil && len(result.Media) > 0)
		return show(cmd, result, remaining, err, renderPage)
	},
}

func init() {
	mediaCmd.AddCommand(mediaSeasonCmd)
	mediaSeasonCmd.Flags().IntP("page", "p", 1, "Page of results")
}

var mediaSeasonCmd = &cobra.Command{
	Use:   "season <winter|spring|summer|fall> <year>",
	Short: "List the anime of a season",
	Args:  cobra.ExactArgs(2),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return []string{"winter", "spring", "summer", "fall"}, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		season, err := parseSeason(args[0])
		if err != nil {
			return err
		}

		year, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[1])
		}

		page, remaining, err := newClient().MediaForSeasonWithRateLimit(cmd.Context(), lo.Must(cmd.Flags().GetInt("page")), season, year)
		return show(cmd, page, remaining, err, renderPage)
	},
}

func init() {
	mediaCmd.AddCommand(mediaCharactersCmd)
	mediaCharactersCmd.Flags().IntP("page", "p", anilist.ContinuationStartPage, "First page of characters to fetch")
}

var mediaCharactersCmd = &cobra.Command{
	Use:   "characters <id>",
	Short: "Fetch the characters of a media entry from a page onwards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		edges, remaining, err := newClient().AllMediaCharactersWithRateLimit(cmd.Context(), id, lo.Must(cmd.Flags().GetInt("page")))
		return show(cmd, &edges, remaining, err, func(edges *[]anilist.CharacterEdge) func(int) string {
			return func(int) string {
				return renderEdges(len(*edges), lo.Map(*edges, func(edge anilist.CharacterEdge, _ int) string {
					return fmt.Sprintf("%s %s", style.Fg(style.FaintColor)(fmt.Sprintf("%8d", edge.Node.ID)), util.Humanize(string(edge.Role)))
				}))
			}
		})
	},
}

// renderEdges lists one line per connection edge followed by the total.
func renderEdges(total int, lines []string) string {
	return strings.Join(append(lines, "", style.Faint(util.Quantify(total, "edge", "edges"))), "\n")
}
