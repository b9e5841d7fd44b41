package cmd

import (
	"bufio"
	"os"
	"strings"

	"github.com/anisan-cli/anigraph/auth"
	"github.com/anisan-cli/anigraph/color"
	"github.com/anisan-cli/anigraph/icon"
	"github.com/anisan-cli/anigraph/key"
	"github.com/anisan-cli/anigraph/style"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd, authClearCmd, authStatusCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the AniList access token sent with requests",
}

// readToken reads a token without echo when stdin is a terminal.
func readToken(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		cmd.Print("Token: ")
		token, err := term.ReadPassword(fd)
		cmd.Println()
		return string(token), err
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

var authSetCmd = &cobra.Command{
	Use:   "set [token]",
	Short: "Store an access token in the system keyring",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			token string
			err   error
		)
		if len(args) == 1 {
			token = args[0]
		} else if token, err = readToken(cmd); err != nil {
			return err
		}

		if err := auth.SetToken(token); err != nil {
			return err
		}

		cmd.Printf("%s token stored\n", style.Fg(color.Green)(icon.Get(icon.Success)))
		if !viper.GetBool(key.AnilistUseToken) {
			cmd.Printf(
				"%s set %s to send it with requests\n",
				style.Fg(color.Yellow)(icon.Get(icon.Info)),
				style.Fg(color.Purple)(key.AnilistUseToken),
			)
		}
		return nil
	},
}

var authClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Remove the access token from the system keyring",
	Aliases: []string{"delete"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := auth.DeleteToken(); err != nil {
			return err
		}

		cmd.Printf("%s token removed\n", style.Fg(color.Green)(icon.Get(icon.Success)))
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether a token is stored and sent",
	Run: func(cmd *cobra.Command, args []string) {
		_, err := auth.GetToken()
		stored := err == nil

		cmd.Printf("%s %t\n", style.Fg(color.Purple)("stored"), stored)
		cmd.Printf("%s %t\n", style.Fg(color.Purple)("sent"), stored && viper.GetBool(key.AnilistUseToken))
	},
}
