// Package icon provides a multi-variant rendering engine for status symbols.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/anisan-cli/anigraph/key"
	"github.com/spf13/viper"
)

// Visual Variant Constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a status symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Info
	RateLimit
	Page
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success:   {emoji: "✅", nerd: "", plain: "ok", kaomoji: "(｡•̀ᴗ-)✧", squares: "▣"},
	Fail:      {emoji: "❌", nerd: "", plain: "error", kaomoji: "(╥﹏╥)", squares: "▨"},
	Warn:      {emoji: "⚠️", nerd: "", plain: "warn", kaomoji: "(・_・;)", squares: "▤"},
	Info:      {emoji: "ℹ️", nerd: "", plain: "info", kaomoji: "(・ω・)", squares: "▢"},
	RateLimit: {emoji: "⏳", nerd: "", plain: "rate", kaomoji: "(-_-) zzZ", squares: "▥"},
	Page:      {emoji: "📄", nerd: "", plain: "page", kaomoji: "φ(..)", squares: "▦"},
}

// Get retrieves the visual representation for the receiver based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered string for a specified Icon from the global registry.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.Get()
}
