package model_test

import (
	"testing"

	"github.com/adurand33/Performance/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestColumns(t *testing.T) {
	Convey("Given the canonical column list", t, func() {
		Convey("Then it holds the seven display columns in order", func() {
			So(model.Columns, ShouldResemble, []string{
				"Event", "Time", "Category", "Club", "Region", "Location", "Date",
			})
		})

		Convey("And IsColumn accepts exactly those names", func() {
			for _, c := range model.Columns {
				So(model.IsColumn(c), ShouldBeTrue)
			}
			So(model.IsColumn("Speed"), ShouldBeFalse)
			So(model.IsColumn("event"), ShouldBeFalse)
			So(model.IsColumn(""), ShouldBeFalse)
		})
	})
}

func TestRecordField(t *testing.T) {
	Convey("Given a record", t, func() {
		r := model.Record{
			Event:    "800m",
			Time:     "1'52\"40",
			Category: "Senior",
			Club:     "AC Belmont",
			Region:   "Bretagne",
			Location: "Rennes",
			Date:     "14/06/2024",
		}

		Convey("Then Field resolves every column", func() {
			So(r.Field(model.ColumnEvent), ShouldEqual, "800m")
			So(r.Field(model.ColumnTime), ShouldEqual, "1'52\"40")
			So(r.Field(model.ColumnCategory), ShouldEqual, "Senior")
			So(r.Field(model.ColumnClub), ShouldEqual, "AC Belmont")
			So(r.Field(model.ColumnRegion), ShouldEqual, "Bretagne")
			So(r.Field(model.ColumnLocation), ShouldEqual, "Rennes")
			So(r.Field(model.ColumnDate), ShouldEqual, "14/06/2024")
		})

		Convey("And an unknown column yields the empty string", func() {
			So(r.Field("Speed"), ShouldEqual, "")
		})
	})
}

func TestSortKeyToggle(t *testing.T) {
	Convey("Given the default sort key", t, func() {
		key := model.DefaultSortKey()
		So(key.Column, ShouldEqual, model.ColumnEvent)
		So(key.Ascending, ShouldBeTrue)

		Convey("When toggling the active column", func() {
			key = key.Toggle(model.ColumnEvent)

			Convey("Then the direction flips", func() {
				So(key.Column, ShouldEqual, model.ColumnEvent)
				So(key.Ascending, ShouldBeFalse)
			})

			Convey("And toggling again flips it back", func() {
				key = key.Toggle(model.ColumnEvent)
				So(key.Ascending, ShouldBeTrue)
			})
		})

		Convey("When toggling a different column", func() {
			key = key.Toggle(model.ColumnTime).Toggle(model.ColumnTime)
			So(key.Ascending, ShouldBeFalse)

			key = key.Toggle(model.ColumnDate)

			Convey("Then the key resets to ascending on the new column", func() {
				So(key.Column, ShouldEqual, model.ColumnDate)
				So(key.Ascending, ShouldBeTrue)
			})
		})
	})
}
