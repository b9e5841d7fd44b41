// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/anisan-cli/anigraph/anilist"
	"github.com/anisan-cli/anigraph/color"
	"github.com/anisan-cli/anigraph/constant"
	"github.com/anisan-cli/anigraph/key"
	"github.com/anisan-cli/anigraph/network"
	"github.com/anisan-cli/anigraph/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Anigraph + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case time.Duration:
		return "duration"
	default:
		return "unknown"
	}
}

// Parse converts a command-line value into the type of the field's default.
func (f *Field) Parse(raw string) (any, error) {
	raw = strings.TrimSpace(raw)

	switch f.Value.(type) {
	case string:
		return raw, nil
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value for %s: %q", f.Key, raw)
		}
		if n < 0 {
			return nil, fmt.Errorf("%s must not be negative, got %d", f.Key, n)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value for %s: %q", f.Key, raw)
		}
		return b, nil
	case time.Duration:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid duration value for %s: %q, expected e.g. 30s or 1m", f.Key, raw)
		}
		if d < 0 {
			return nil, fmt.Errorf("%s must not be negative, got %s", f.Key, d)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("%s cannot be set from the command line", f.Key)
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.AnilistEndpoint, constant.AnilistEndpoint, "GraphQL endpoint to send queries to")
	register(key.AnilistUseToken, false, "Send the token stored with \"anigraph auth set\" with every request")
	register(key.TitleLanguage, "ENGLISH", "Language media titles are printed in.\nAvailable options are: ENGLISH, ROMAJI, NATIVE")
	register(key.HTTPTimeout, network.DefaultTimeout, "Timeout of a single request")
	register(key.HTTPRequestsPerMinute, 90, "Maximum requests sent per minute.\n0 disables client side pacing")
	register(key.RateLimitObey, false, "Wait when the remaining calls drop below the tolerance while fetching more pages")
	register(key.RateLimitTolerance, 0, "Remaining calls below which fetching more pages waits")
	register(key.RateLimitTimeout, anilist.DefaultRateLimitTimeout, "How long to wait once the tolerance is reached")
	register(key.ContinuationMaxRetries, 0, "Attempts at a failing page before giving up.\n0 retries forever")
	register(key.ContinuationRetryDelay, time.Second, "Delay between attempts at a failing page")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(f *Field) string { return f.typeName() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename . }}`))
