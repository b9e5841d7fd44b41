package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})

		Convey("Use accepts any afero backend", func() {
			Use(afero.NewReadOnlyFs(afero.NewMemMapFs()))
			So(API().Name(), ShouldEqual, "ReadOnlyFilter")
			SetMemMapFs()
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("GacheFs writes through the active backend", t, func() {
		SetMemMapFs()
		var fs GacheFs

		So(fs.MkdirAll("/cache", os.ModePerm), ShouldBeNil)
		f, err := fs.OpenFile("/cache/data.json", os.O_CREATE|os.O_RDWR, 0o644)
		So(err, ShouldBeNil)
		_, err = f.Write([]byte("{}"))
		So(err, ShouldBeNil)
		So(f.Close(), ShouldBeNil)

		exists, err := API().Exists("/cache/data.json")
		So(err, ShouldBeNil)
		So(exists, ShouldBeTrue)
	})
}
