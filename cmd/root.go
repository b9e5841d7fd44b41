// Package cmd implements the command-line interface for anigraph.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/anisan-cli/anigraph/color"
	"github.com/anisan-cli/anigraph/config"
	"github.com/anisan-cli/anigraph/constant"
	"github.com/anisan-cli/anigraph/icon"
	"github.com/anisan-cli/anigraph/key"
	"github.com/anisan-cli/anigraph/log"
	"github.com/anisan-cli/anigraph/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("endpoint", "E", "", "GraphQL endpoint to send queries to")
	lo.Must0(viper.BindPFlag(key.AnilistEndpoint, rootCmd.PersistentFlags().Lookup("endpoint")))

	rootCmd.PersistentFlags().Bool("obey-rate-limit", false, "Wait when few calls remain while fetching more pages")
	lo.Must0(viper.BindPFlag(key.RateLimitObey, rootCmd.PersistentFlags().Lookup("obey-rate-limit")))

	rootCmd.PersistentFlags().BoolP("json", "j", false, "Print results as JSON")
	rootCmd.PersistentFlags().BoolP("rate-limit", "r", false, "Print the calls remaining in the current rate limit window")
	rootCmd.PersistentFlags().Bool("metrics", false, "Print request metrics before exiting")
}

// rootCmd defines the entry point for the anigraph application.
var rootCmd = &cobra.Command{
	Use:   constant.Anigraph,
	Short: "A command-line client for the AniList GraphQL API",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - A command-line client for the AniList GraphQL API"),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("metrics")) {
			handleErr(printMetrics(cmd))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		_ = cmd.Help()
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	handleErr(rootCmd.ExecuteContext(ctx))
}

// newClient builds the API client once flags have been bound to the configuration.
var newClient = config.NewClient

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(style.ErrorColor)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
