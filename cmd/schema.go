package cmd

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/anisan-cli/anigraph/anilist"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// schemaTargets maps entity names to a value of the type printed by the matching lookup command.
var schemaTargets = map[string]any{
	"media":          &anilist.Media{},
	"page":           &anilist.Page{},
	"character":      &anilist.Character{},
	"staff":          &anilist.Staff{},
	"studio":         &anilist.Studio{},
	"user":           &anilist.User{},
	"review":         &anilist.Review{},
	"recommendation": &anilist.Recommendation{},
	"airing":         &anilist.AiringSchedule{},
}

func schemaNames() []string {
	names := lo.Keys(schemaTargets)
	sort.Strings(names)
	return names
}

func reflectSchema(name string) (*jsonschema.Schema, error) {
	target, ok := schemaTargets[name]
	if !ok {
		return nil, fmt.Errorf("unknown entity %q, expected one of %s", name, strings.Join(schemaNames(), ", "))
	}

	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch strings.ToLower(name) {
		case "name", "image", "title":
			return "anilist." + name
		}

		return name
	}

	return reflector.Reflect(target), nil
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// schemaCmd generates JSON schemas for the JSON printed by lookup commands.
var schemaCmd = &cobra.Command{
	Use:       "schema <entity>",
	Short:     "Generate the JSON schema of an entity printed with --json",
	Args:      cobra.ExactArgs(1),
	ValidArgs: schemaNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := reflectSchema(args[0])
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(schema)
	},
}
