package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRenderers(t *testing.T) {
	Convey("Given the renderers", t, func() {
		Convey("They keep the rendered text", func() {
			So(Fg(AccentColor)("titan"), ShouldContainSubstring, "titan")
			So(Bold("titan"), ShouldContainSubstring, "titan")
			So(Tag(SuccessColor, BorderColor)("TV"), ShouldContainSubstring, "TV")
		})

		Convey("Section wraps text to the requested width", func() {
			rendered := Section(20)("a fairly long line of text that must wrap")
			So(lipgloss.Width(rendered), ShouldBeLessThanOrEqualTo, 22)
			So(rendered, ShouldContainSubstring, "wrap")
		})
	})
}
