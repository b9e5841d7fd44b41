package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/anisan-cli/anigraph/color"
	"github.com/anisan-cli/anigraph/config"
	"github.com/anisan-cli/anigraph/constant"
	"github.com/anisan-cli/anigraph/filesystem"
	"github.com/anisan-cli/anigraph/icon"
	"github.com/anisan-cli/anigraph/style"
	"github.com/anisan-cli/anigraph/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// lookupField returns the registered field for name, suggesting the closest key otherwise.
func lookupField(name string) (config.Field, error) {
	if field, ok := config.Default[name]; ok {
		return field, nil
	}

	closest := lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return config.Field{}, fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest),
	)
}

func configFile() string {
	return filepath.Join(where.Config(), constant.Anigraph+".toml")
}

// writeConfig persists the in-memory configuration, creating the file on first use.
func writeConfig() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

func done(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func completeConfigKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage client settings such as the endpoint, pacing and retries",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", nil, "Only describe these keys")
	lo.Must0(configInfoCmd.RegisterFlagCompletionFunc("key", completeConfigKeys))
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe configuration keys with their current and default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := lo.Values(config.Default)

		if keys := lo.Must(cmd.Flags().GetStringSlice("key")); len(keys) > 0 {
			fields = make([]config.Field, 0, len(keys))
			for _, name := range keys {
				field, err := lookupField(name)
				if err != nil {
					return err
				}
				fields = append(fields, field)
			}
		}

		slices.SortFunc(fields, func(a, b config.Field) int {
			switch {
			case a.Key < b.Key:
				return -1
			case a.Key > b.Key:
				return 1
			}
			return 0
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			pointers := lo.Map(fields, func(f config.Field, _ int) *config.Field { return &f })
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(pointers)
		}

		for i := range fields {
			if i > 0 {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), "\n\n")
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), fields[i].Pretty())
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>",
	Short:             "Change a configuration key and save it",
	Example:           "  anigraph config set ratelimit.timeout 30s\n  anigraph config set continuation.max_retries 3",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeConfigKeys,
	RunE: func(cmd *cobra.Command, args []string) error {
		field, err := lookupField(args[0])
		if err != nil {
			return err
		}

		value, err := field.Parse(args[1])
		if err != nil {
			return err
		}

		viper.Set(field.Key, value)
		if err := writeConfig(); err != nil {
			return err
		}

		done(cmd, "set %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(value)))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print the current value of a configuration key",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeConfigKeys,
	RunE: func(cmd *cobra.Command, args []string) error {
		field, err := lookupField(args[0])
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), viper.Get(field.Key))
		return err
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing configuration file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Save the current configuration to the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFile()

		if lo.Must(cmd.Flags().GetBool("force")) {
			if err := filesystem.API().Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}

		if err := viper.SafeWriteConfig(); err != nil {
			return err
		}

		done(cmd, "wrote config to %s", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the configuration file",
	Aliases: []string{"remove"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := filesystem.API().Remove(configFile()); err != nil {
			return err
		}

		done(cmd, "deleted config")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key]",
	Short:             "Restore a configuration key to its default value",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeConfigKeys,
	RunE: func(cmd *cobra.Command, args []string) error {
		all := lo.Must(cmd.Flags().GetBool("all"))

		var fields []config.Field
		switch {
		case all && len(args) > 0:
			return errors.New("a key cannot be combined with --all")
		case all:
			fields = lo.Values(config.Default)
		case len(args) == 0:
			return errors.New("either a key or --all is required")
		default:
			field, err := lookupField(args[0])
			if err != nil {
				return err
			}
			fields = []config.Field{field}
		}

		for _, field := range fields {
			viper.Set(field.Key, field.Value)
		}

		if err := writeConfig(); err != nil {
			return err
		}

		if all {
			done(cmd, "reset all config values")
		} else {
			done(cmd, "reset %s to %s", style.Fg(color.Purple)(fields[0].Key), style.Fg(color.Yellow)(fmt.Sprint(fields[0].Value)))
		}
		return nil
	},
}
