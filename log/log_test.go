package log

import (
	"bytes"
	"testing"

	"github.com/anisan-cli/anigraph/filesystem"
	"github.com/anisan-cli/anigraph/key"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Setup", t, func() {
		Reset(func() {
			viper.Set(key.LogsWrite, false)
			viper.Set(key.LogsJson, false)
			viper.Set(key.LogsLevel, "info")
		})

		Convey("Discards output when logging is disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(logger.Out, ShouldNotBeNil)
		})

		Convey("Opens a log file when logging is enabled", func() {
			viper.Set(key.LogsWrite, true)
			So(Setup(), ShouldBeNil)
			So(logger.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})
	})
}

func TestConfigure(t *testing.T) {
	Convey("configure", t, func() {
		var buf bytes.Buffer

		Convey("Honours level and json settings", func() {
			viper.Set(key.LogsJson, true)
			viper.Set(key.LogsLevel, "warn")
			So(configure(&buf), ShouldBeNil)

			Infof("hidden")
			Warnf("page %d failed", 3)

			So(buf.String(), ShouldNotContainSubstring, "hidden")
			So(buf.String(), ShouldContainSubstring, `"msg":"page 3 failed"`)
		})

		Convey("Falls back to info on an unknown level", func() {
			viper.Set(key.LogsJson, false)
			viper.Set(key.LogsLevel, "verbose")
			So(configure(&buf), ShouldBeNil)
			So(logger.GetLevel(), ShouldEqual, logrus.InfoLevel)

			WithFields(logrus.Fields{"kind": "characters"}).Info("drained")
			So(buf.String(), ShouldContainSubstring, "kind=characters")
		})
	})
}
