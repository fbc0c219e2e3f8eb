package parse_test

import (
	"testing"
	"time"

	"github.com/adurand33/Performance/internal/domain/parse"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDate(t *testing.T) {
	Convey("Given the day-first date parser", t, func() {
		Convey("When parsing day-first dates", func() {
			d, ok := parse.Date("14/06/2024")
			So(ok, ShouldBeTrue)
			So(d.Year(), ShouldEqual, 2024)
			So(d.Month(), ShouldEqual, time.June)
			So(d.Day(), ShouldEqual, 14)

			d, ok = parse.Date("3/1/2023")
			So(ok, ShouldBeTrue)
			So(d.Month(), ShouldEqual, time.January)
			So(d.Day(), ShouldEqual, 3)

			d, ok = parse.Date("25-12-2022")
			So(ok, ShouldBeTrue)
			So(d.Day(), ShouldEqual, 25)
		})

		Convey("When parsing an ISO date", func() {
			d, ok := parse.Date("2024-06-14")
			So(ok, ShouldBeTrue)
			So(d.Day(), ShouldEqual, 14)
		})

		Convey("When the input is unparsable", func() {
			for _, raw := range []string{"", "yesterday", "31/02/20x4", "June 14"} {
				_, ok := parse.Date(raw)
				So(ok, ShouldBeFalse)
			}
		})
	})
}
