package parse_test

import (
	"testing"

	"github.com/adurand33/Performance/internal/domain/parse"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeconds(t *testing.T) {
	Convey("Given the race time parser", t, func() {
		Convey("When parsing the hour form", func() {
			v, ok := parse.Seconds("2h03'45.67")
			So(ok, ShouldBeTrue)
			So(v, ShouldAlmostEqual, 2*3600+3*60+45.67, 1e-9)
		})

		Convey("When parsing a minutes'seconds time", func() {
			v, ok := parse.Seconds("3'45.2")
			So(ok, ShouldBeTrue)
			So(v, ShouldAlmostEqual, 3*60+45.2, 1e-9)
		})

		Convey("When parsing a minutes'seconds\"hundredths time", func() {
			v, ok := parse.Seconds(`3'45"67`)
			So(ok, ShouldBeTrue)
			So(v, ShouldAlmostEqual, 3*60+45+0.67, 1e-9)
		})

		Convey("When parsing plain seconds", func() {
			v, ok := parse.Seconds("45.30")
			So(ok, ShouldBeTrue)
			So(v, ShouldAlmostEqual, 45.30, 1e-9)
		})

		Convey("When double quotes stand in for apostrophes", func() {
			v, ok := parse.Seconds(`3"45"67`)
			So(ok, ShouldBeTrue)
			So(v, ShouldAlmostEqual, 225.67, 1e-9)
		})

		Convey("When the input carries surrounding whitespace", func() {
			v, ok := parse.Seconds("  1'59.9 ")
			So(ok, ShouldBeTrue)
			So(v, ShouldAlmostEqual, 119.9, 1e-9)
		})

		Convey("When a trailing separator acts as a decimal point", func() {
			v, ok := parse.Seconds("45'")
			So(ok, ShouldBeTrue)
			So(v, ShouldAlmostEqual, 45, 1e-9)
		})

		Convey("When the hour form is malformed", func() {
			Convey("Then a missing minute separator fails", func() {
				_, ok := parse.Seconds("2h0345")
				So(ok, ShouldBeFalse)
			})
			Convey("And fractional minutes fail", func() {
				_, ok := parse.Seconds("2h3.5'45")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the input is garbage", func() {
			for _, raw := range []string{"", "DNF", "??", "a'b", "1'2'3'4"} {
				v, ok := parse.Seconds(raw)
				So(ok, ShouldBeFalse)
				So(v, ShouldEqual, 0)
			}
		})
	})
}

func TestSecondsOrZero(t *testing.T) {
	Convey("Given the total form of the time parser", t, func() {
		Convey("Then malformed input degrades to the zero sentinel", func() {
			So(parse.SecondsOrZero("not a time"), ShouldEqual, 0)
			So(parse.SecondsOrZero(""), ShouldEqual, 0)
		})

		Convey("And well-formed input parses as usual", func() {
			So(parse.SecondsOrZero("2h03'45.67"), ShouldAlmostEqual, 7425.67, 1e-9)
			So(parse.SecondsOrZero(`3'45"67`), ShouldAlmostEqual, 225.67, 1e-9)
			So(parse.SecondsOrZero("45.30"), ShouldAlmostEqual, 45.30, 1e-9)
		})
	})
}
