package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/anisan-cli/anigraph/anilist"
	"github.com/anisan-cli/anigraph/icon"
	"github.com/anisan-cli/anigraph/key"
	"github.com/anisan-cli/anigraph/style"
	"github.com/anisan-cli/anigraph/util"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	minWidth = 40
	maxWidth = 100
)

// printer writes lookup results as text or JSON.
type printer struct {
	out       io.Writer
	asJson    bool
	rateLimit bool
	width     int
}

func newPrinter(cmd *cobra.Command) *printer {
	return &printer{
		out:       cmd.OutOrStdout(),
		asJson:    lo.Must(cmd.Flags().GetBool("json")),
		rateLimit: lo.Must(cmd.Flags().GetBool("rate-limit")),
		width:     util.TerminalWidth(minWidth, maxWidth),
	}
}

// envelope wraps JSON output when the rate limit was requested.
type envelope struct {
	Data               any `json:"data"`
	RateLimitRemaining int `json:"rateLimitRemaining"`
}

// print writes value, or a not found notice when missing is set.
func (p *printer) print(value any, missing bool, remaining int, text func(width int) string) error {
	if p.asJson {
		var data any = value
		if missing {
			data = nil
		}
		if p.rateLimit {
			data = envelope{Data: data, RateLimitRemaining: remaining}
		}

		encoder := json.NewEncoder(p.out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	}

	if missing {
		fmt.Fprintf(p.out, "%s %s\n", style.Fg(style.WarningColor)(icon.Get(icon.Warn)), "not found")
	} else {
		fmt.Fprintln(p.out, text(p.width))
	}

	if p.rateLimit {
		fmt.Fprintf(
			p.out,
			"%s %s\n",
			style.Fg(style.FaintColor)(icon.Get(icon.RateLimit)),
			style.Faint(util.Quantify(remaining, "call remaining", "calls remaining")),
		)
	}

	return nil
}

// preferredTitle picks a media title in the configured title language.
func preferredTitle(title anilist.Title) string {
	return title.Preferred(anilist.UserTitleLanguage(viper.GetString(key.TitleLanguage)))
}

func heading(title string, tags ...string) string {
	tags = lo.Compact(tags)
	rendered := lo.Map(tags, func(tag string, _ int) string {
		return style.Tag(style.BorderColor, style.SecondaryColor)(tag)
	})
	return strings.Join(append([]string{style.Title(title)}, rendered...), " ")
}

func field(name string, value any) string {
	switch v := value.(type) {
	case string:
		if v == "" {
			return ""
		}
	case int:
		if v == 0 {
			return ""
		}
	case mo.Option[time.Time]:
		if v.IsAbsent() {
			return ""
		}
		value = v.MustGet().Format("2006-01-02")
	}

	return fmt.Sprintf("%s %v", style.Fg(style.AccentColor)(name+":"), value)
}

func block(width int, lines ...string) string {
	lines = lo.Compact(lines)
	return strings.Join(lo.Map(lines, func(line string, _ int) string {
		return truncate.StringWithTail(line, uint(width), "…")
	}), "\n")
}

func description(width int, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return indent.String(wordwrap.String(text, width-2), 2)
}

// count formats n with thousands separators, empty for zero.
func count(n int) string {
	if n == 0 {
		return ""
	}
	return humanize.Comma(int64(n))
}

func ids(values []int) string {
	if len(values) == 0 {
		return ""
	}
	return strings.Join(lo.Map(values, func(id, _ int) string { return strconv.Itoa(id) }), ", ")
}

func renderMedia(m *anilist.Media) func(int) string {
	return func(width int) string {
		var season string
		if m.Season != "" {
			season = fmt.Sprintf("%s %d", util.Humanize(string(m.Season)), m.SeasonYear)
		}

		main := m.CharactersWithRole(anilist.CharacterRoleMain)
		characters := util.Quantify(len(m.Characters.Edges), "character", "characters")
		if len(main) > 0 {
			characters += fmt.Sprintf(" (%d main)", len(main))
		}

		return strings.Join(lo.Compact([]string{
			heading(preferredTitle(m.Title), util.Humanize(string(m.Format)), util.Humanize(string(m.Status)), season),
			block(width,
				field("ID", m.ID),
				field("MAL", m.IDMal),
				field("Native", m.Title.Native),
				field("Started", m.StartedAt()),
				field("Ended", m.EndedAt()),
				field("Episodes", m.Episodes),
				field("Chapters", m.Chapters),
				field("Score", m.AverageScore),
				field("Popularity", count(m.Popularity)),
				field("Genres", strings.Join(m.Genres, ", ")),
				field("Studios", ids(m.MainStudioIDs())),
				field("Characters", characters),
				field("URL", m.SiteURL),
			),
			description(width, m.DescriptionMd),
		}), "\n\n")
	}
}

func renderPage(page *anilist.Page) func(int) string {
	return func(width int) string {
		var b strings.Builder
		for _, m := range page.Media {
			fmt.Fprintf(&b, "%s %s\n",
				style.Fg(style.FaintColor)(fmt.Sprintf("%8d", m.ID)),
				truncate.StringWithTail(preferredTitle(m.Title), uint(width-10), "…"),
			)
		}

		info := page.PageInfo
		fmt.Fprintf(&b, "\n%s %s",
			style.Fg(style.FaintColor)(icon.Get(icon.Page)),
			style.Faint(fmt.Sprintf("page %d of %d, %s", info.CurrentPage, info.LastPage, util.Quantify(info.Total, "result", "results"))),
		)
		return b.String()
	}
}

func renderCharacter(c *anilist.Character) func(int) string {
	return func(width int) string {
		return strings.Join(lo.Compact([]string{
			heading(c.Name.Full),
			block(width,
				field("ID", c.ID),
				field("Native", c.Name.Native),
				field("Alternative", strings.Join(c.Name.Alternative, ", ")),
				field("Favourites", count(c.Favourites)),
				field("Media", util.Quantify(len(c.MediaIDs()), "entry", "entries")),
				field("Main role in", ids(c.MainRoles())),
				field("URL", c.SiteURL),
			),
			description(width, c.DescriptionMd),
		}), "\n\n")
	}
}

func renderStaff(s *anilist.Staff) func(int) string {
	return func(width int) string {
		return strings.Join(lo.Compact([]string{
			heading(s.Name.Full, util.Humanize(string(s.Language))),
			block(width,
				field("ID", s.ID),
				field("Native", s.Name.Native),
				field("Favourites", s.Favourites),
				field("Characters", util.Quantify(len(s.Characters.Edges), "character", "characters")),
				field("Worked on", util.Quantify(len(s.StaffMediaIDs()), "entry", "entries")),
				field("URL", s.SiteURL),
			),
			description(width, s.DescriptionMd),
		}), "\n\n")
	}
}

func renderStudio(s *anilist.Studio) func(int) string {
	return func(width int) string {
		kind := "Company"
		if s.IsAnimationStudio {
			kind = "Animation studio"
		}

		return strings.Join([]string{
			heading(s.Name, kind),
			block(width,
				field("ID", s.ID),
				field("Favourites", s.Favourites),
				field("Media", ids(s.MediaIDs())),
				field("URL", s.SiteURL),
			),
		}, "\n\n")
	}
}

func renderUser(u *anilist.User) func(int) string {
	return func(width int) string {
		return strings.Join(lo.Compact([]string{
			heading(u.Name, util.Humanize(string(u.ScoreFormat()))),
			block(width,
				field("ID", u.ID),
				field("Title language", util.Humanize(string(u.TitleLanguage()))),
				field("Updated", u.LastUpdated()),
				field("URL", u.SiteURL),
			),
			description(width, u.AboutMd),
		}), "\n\n")
	}
}

func renderReview(r *anilist.Review) func(int) string {
	return func(width int) string {
		return strings.Join(lo.Compact([]string{
			heading(fmt.Sprintf("Review #%d", r.ID), util.Humanize(string(r.MediaType))),
			block(width,
				field("Media", r.MediaID),
				field("User", r.UserID),
				field("Score", r.Score),
				field("Rating", fmt.Sprintf("%d/%d", r.Rating, r.RatingAmount)),
				field("Created", r.Created()),
				field("Summary", r.Summary),
				field("URL", r.SiteURL),
			),
			description(width, r.BodyMd),
		}), "\n\n")
	}
}

func renderRecommendation(r *anilist.Recommendation) func(int) string {
	return func(width int) string {
		return strings.Join([]string{
			heading(fmt.Sprintf("Recommendation #%d", r.ID)),
			block(width,
				field("For", r.MediaID()),
				field("Recommended", r.RecommendedMediaID()),
				field("User", r.UserID()),
				field("Rating", strconv.Itoa(r.Rating)),
			),
		}, "\n\n")
	}
}

func renderAiringSchedule(a *anilist.AiringSchedule) func(int) string {
	return func(width int) string {
		var airs string
		if at, ok := a.AirsAt().Get(); ok {
			airs = fmt.Sprintf("%s (%s)", at.Local().Format(time.DateTime), humanize.Time(at))
		}

		return strings.Join([]string{
			heading(fmt.Sprintf("Episode %d", a.Episode)),
			block(width,
				field("ID", a.ID),
				field("Media", a.MediaID),
				field("Airs", airs),
			),
		}, "\n\n")
	}
}
