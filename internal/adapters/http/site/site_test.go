package site

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSiteHandler(t *testing.T) {
	Convey("Given the embedded dashboard site", t, func() {
		ctx := context.Background()
		mux := http.NewServeMux()
		Register(ctx, mux)

		Convey("When requesting the root page", func() {
			req := httptest.NewRequest("GET", "/", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the dashboard page is served", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
				So(w.Body.String(), ShouldContainSubstring, "Athlete Performance Dashboard")
			})

			Convey("And it carries the seven sort columns", func() {
				for _, col := range []string{"Event", "Time", "Category", "Club", "Region", "Location", "Date"} {
					So(w.Body.String(), ShouldContainSubstring, col)
				}
			})
		})

		Convey("When requesting a missing asset", func() {
			req := httptest.NewRequest("GET", "/missing.js", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestSiteFS(t *testing.T) {
	Convey("Given the embedded filesystem", t, func() {
		fs := FS()

		Convey("Then index.html is present", func() {
			f, err := fs.Open("index.html")
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)
		})
	})
}
