package cmd

import (
	"fmt"

	"github.com/anisan-cli/anigraph/anilist"
	"github.com/anisan-cli/anigraph/query"
	"github.com/anisan-cli/anigraph/style"
	"github.com/anisan-cli/anigraph/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(characterCmd)
	characterCmd.Flags().Int("id", 0, "Look the character up by its AniList id")
}

var characterCmd = &cobra.Command{
	Use:               "character [search]",
	Short:             "Look up a character with every media entry it appears in",
	ValidArgsFunction: completeSearch(query.ScopeCharacter),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, search, err := idOrSearch(cmd, args)
		if err != nil {
			return err
		}

		c := newClient()
		if id > 0 {
			character, remaining, err := c.CharacterByIDWithRateLimit(cmd.Context(), id)
			return show(cmd, character, remaining, err, renderCharacter)
		}

		character, remaining, err := c.CharacterBySearchWithRateLimit(cmd.Context(), search)
		remember(cmd, query.ScopeCharacter, search, character != nil)
		return show(cmd, character, remaining, err, renderCharacter)
	},
}

func init() {
	characterCmd.AddCommand(characterMediaCmd)
	characterMediaCmd.Flags().IntP("page", "p", anilist.ContinuationStartPage, "First page of media to fetch")
}

var characterMediaCmd = &cobra.Command{
	Use:   "media <id>",
	Short: "Fetch the media entries of a character from a page onwards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		media, remaining, err := newClient().AllCharacterMediaWithRateLimit(cmd.Context(), id, lo.Must(cmd.Flags().GetInt("page")))
		return show(cmd, &media, remaining, err, func(media *anilist.CharacterMediaConnection) func(int) string {
			return func(int) string {
				return renderEdges(len(media.Nodes), lo.Map(media.Nodes, func(node anilist.MediaNode, _ int) string {
					role, _ := media.RoleIn(node.ID)
					return fmt.Sprintf("%s %s %s",
						style.Fg(style.FaintColor)(fmt.Sprintf("%8d", node.ID)),
						util.Humanize(string(node.Type)),
						style.Faint(util.Humanize(string(role))),
					)
				}))
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(staffCmd)
	staffCmd.Flags().Int("id", 0, "Look the staff member up by its AniList id")
}

var staffCmd = &cobra.Command{
	Use:               "staff [search]",
	Short:             "Look up a staff member with every character they voiced",
	ValidArgsFunction: completeSearch(query.ScopeStaff),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, search, err := idOrSearch(cmd, args)
		if err != nil {
			return err
		}

		c := newClient()
		if id > 0 {
			staff, remaining, err := c.StaffByIDWithRateLimit(cmd.Context(), id)
			return show(cmd, staff, remaining, err, renderStaff)
		}

		staff, remaining, err := c.StaffBySearchWithRateLimit(cmd.Context(), search)
		remember(cmd, query.ScopeStaff, search, staff != nil)
		return show(cmd, staff, remaining, err, renderStaff)
	},
}

func init() {
	staffCmd.AddCommand(staffCharactersCmd)
	staffCharactersCmd.Flags().IntP("page", "p", anilist.ContinuationStartPage, "First page of characters to fetch")
}

var staffCharactersCmd = &cobra.Command{
	Use:   "characters <id>",
	Short: "Fetch the characters voiced by a staff member from a page onwards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		edges, remaining, err := newClient().AllStaffCharactersWithRateLimit(cmd.Context(), id, lo.Must(cmd.Flags().GetInt("page")))
		return show(cmd, &edges, remaining, err, func(edges *[]anilist.StaffCharacterEdge) func(int) string {
			return func(int) string {
				return renderEdges(len(*edges), lo.Map(*edges, func(edge anilist.StaffCharacterEdge, _ int) string {
					return fmt.Sprintf("%s %s %s",
						style.Fg(style.FaintColor)(fmt.Sprintf("%8d", edge.Node.ID)),
						edge.Node.Name.First,
						edge.Node.Name.Last,
					)
				}))
			}
		})
	},
}
