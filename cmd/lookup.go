package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anisan-cli/anigraph/anilist"
	"github.com/anisan-cli/anigraph/icon"
	"github.com/anisan-cli/anigraph/log"
	"github.com/anisan-cli/anigraph/query"
	"github.com/anisan-cli/anigraph/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// show prints the result of a lookup, treating a nil value as not found.
func show[T any](cmd *cobra.Command, value *T, remaining int, err error, render func(*T) func(int) string) error {
	if err != nil {
		return err
	}

	return newPrinter(cmd).print(value, value == nil, remaining, func(width int) string {
		return render(value)(width)
	})
}

// remember stores a search that matched something for later completion.
// A search that matched nothing gets a hint naming the closest past search instead.
func remember(cmd *cobra.Command, scope query.Scope, search string, found bool) {
	if !found {
		suggestion, ok := query.Suggest(scope, search).Get()
		if ok && !strings.EqualFold(suggestion, strings.TrimSpace(search)) && !lo.Must(cmd.Flags().GetBool("json")) {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s did you mean %s?\n",
				style.Fg(style.SecondaryColor)(icon.Get(icon.Info)),
				style.Fg(style.AccentColor)(suggestion),
			)
		}
		return
	}

	if err := query.Remember(scope, search, 1); err != nil {
		log.Warnf("failed to remember %s search %q: %s", scope, search, err)
	}
}

func completeSearch(scope query.Scope) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return query.SuggestMany(scope, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func parseMediaType(value string) (anilist.MediaType, error) {
	mediaType := anilist.MediaType(strings.ToUpper(value))
	if !lo.Contains([]anilist.MediaType{anilist.MediaTypeAnime, anilist.MediaTypeManga}, mediaType) {
		return "", fmt.Errorf("invalid media type %q, expected anime or manga", value)
	}
	return mediaType, nil
}

func parseSeason(value string) (anilist.MediaSeason, error) {
	season := anilist.MediaSeason(strings.ToUpper(value))
	if !lo.Contains(anilist.Seasons, season) {
		return "", fmt.Errorf("invalid season %q, expected one of %s", value, strings.Join(lo.Map(anilist.Seasons, func(s anilist.MediaSeason, _ int) string {
			return strings.ToLower(string(s))
		}), ", "))
	}
	return season, nil
}

// idOrSearch resolves the --id flag or the search argument of a lookup command.
func idOrSearch(cmd *cobra.Command, args []string) (id int, search string, err error) {
	id = lo.Must(cmd.Flags().GetInt("id"))
	switch {
	case id > 0:
		return id, "", nil
	case len(args) == 0 || strings.TrimSpace(strings.Join(args, " ")) == "":
		return 0, "", fmt.Errorf("either a search or --id is required")
	default:
		return 0, strings.Join(args, " "), nil
	}
}

func init() {
	rootCmd.AddCommand(studioCmd)
	studioCmd.Flags().Int("id", 0, "Look the studio up by its AniList id")
}

var studioCmd = &cobra.Command{
	Use:               "studio [search]",
	Short:             "Look up an animation studio",
	ValidArgsFunction: completeSearch(query.ScopeStudio),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, search, err := idOrSearch(cmd, args)
		if err != nil {
			return err
		}

		c := newClient()
		if id > 0 {
			studio, remaining, err := c.StudioByIDWithRateLimit(cmd.Context(), id)
			return show(cmd, studio, remaining, err, renderStudio)
		}

		studio, remaining, err := c.StudioBySearchWithRateLimit(cmd.Context(), search)
		remember(cmd, query.ScopeStudio, search, studio != nil)
		return show(cmd, studio, remaining, err, renderStudio)
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.Flags().Int("id", 0, "Look the user up by id instead of name")
}

var userCmd = &cobra.Command{
	Use:               "user [name]",
	Short:             "Look up a public AniList profile",
	ValidArgsFunction: completeSearch(query.ScopeUser),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, name, err := idOrSearch(cmd, args)
		if err != nil {
			return err
		}

		c := newClient()
		if id > 0 {
			user, remaining, err := c.UserByIDWithRateLimit(cmd.Context(), id)
			return show(cmd, user, remaining, err, renderUser)
		}

		user, remaining, err := c.UserByNameWithRateLimit(cmd.Context(), name)
		remember(cmd, query.ScopeUser, name, user != nil)
		return show(cmd, user, remaining, err, renderUser)
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd, recommendationCmd, airingCmd)
}

var reviewCmd = &cobra.Command{
	Use:   "review <id>",
	Short: "Look up a review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		review, remaining, err := newClient().ReviewByIDWithRateLimit(cmd.Context(), id)
		return show(cmd, review, remaining, err, renderReview)
	},
}

var recommendationCmd = &cobra.Command{
	Use:     "recommendation <id>",
	Short:   "Look up a recommendation",
	Aliases: []string{"rec"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		recommendation, remaining, err := newClient().RecommendationByIDWithRateLimit(cmd.Context(), id)
		return show(cmd, recommendation, remaining, err, renderRecommendation)
	},
}

var airingCmd = &cobra.Command{
	Use:   "airing <id>",
	Short: "Look up an airing schedule entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		schedule, remaining, err := newClient().AiringScheduleByIDWithRateLimit(cmd.Context(), id)
		return show(cmd, schedule, remaining, err, renderAiringSchedule)
	},
}
