package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/adurand33/Performance/internal/adapters/http/api"
	"github.com/adurand33/Performance/internal/adapters/http/site"
	"github.com/adurand33/Performance/internal/adapters/http/swagger"
	app "github.com/adurand33/Performance/internal/app"
	"github.com/adurand33/Performance/internal/config"
	"github.com/adurand33/Performance/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("PERF_ADDR", ":8080")
			_ = os.Setenv("PERF_CACHE_TTL_SECONDS", "10")
			_ = os.Setenv("PERF_MAX_SESSIONS", "500")
			defer func() {
				_ = os.Unsetenv("PERF_ADDR")
				_ = os.Unsetenv("PERF_CACHE_TTL_SECONDS")
				_ = os.Unsetenv("PERF_MAX_SESSIONS")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.CacheTTLSeconds, convey.ShouldEqual, 10)
				convey.So(cfg.MaxSessions, convey.ShouldEqual, 500)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithRecordsPath("athletes.json"),
					app.WithCacheTTL(10*time.Second),
					app.WithMaxSessions(500),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := app.New()
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then HTTP server should be creatable", func() {
				server := api.NewServer(svc, svc)
				convey.So(server, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				registry := prometheus.NewRegistry()
				manager := metrics.NewManager(metrics.WithRegistry(registry))
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing the system metrics updater", func() {
			convey.Convey("Then it should run until cancelled", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startSystemMetricsUpdater(ctx)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing a system metrics update", func() {
			convey.Convey("Then it should update metrics without panicking", func() {
				convey.So(func() {
					updateSystemMetrics()
				}, convey.ShouldNotPanic)
			})
		})
	})
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given main application integration", t, func() {
		convey.Convey("When wiring all components together", func() {
			dir := t.TempDir()
			path := dir + "/athletes.json"
			convey.So(os.WriteFile(path, []byte(`{"Alice":[]}`), 0o644), convey.ShouldBeNil)

			_ = os.Setenv("PERF_ADDR", ":8080")
			_ = os.Setenv("PERF_RECORDS_PATH", path)
			defer func() {
				_ = os.Unsetenv("PERF_ADDR")
				_ = os.Unsetenv("PERF_RECORDS_PATH")
			}()

			convey.Convey("Then all components should work together", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)

				svc := app.New(
					app.WithRecordsPath(cfg.RecordsPath),
					app.WithCacheTTL(time.Duration(cfg.CacheTTLSeconds)*time.Second),
					app.WithFileWatch(false),
				)
				convey.So(svc, convey.ShouldNotBeNil)
				convey.So(svc.Start(ctx), convey.ShouldBeNil)
				defer svc.Stop()

				mux := http.NewServeMux()
				site.Register(ctx, mux)
				swagger.Register(ctx, mux)

				server := api.NewServer(svc, svc)
				server.Register(ctx, mux, svc)
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given main application error handling", t, func() {
		convey.Convey("When the listen address is blank", func() {
			_ = os.Setenv("PERF_ADDR", "")
			defer func() { _ = os.Unsetenv("PERF_ADDR") }()

			convey.Convey("Then configuration loading should fail", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the records path points nowhere", func() {
			svc := app.New(
				app.WithRecordsPath(t.TempDir()+"/missing.json"),
				app.WithFileWatch(false),
			)
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then startup still succeeds and reads degrade", func() {
				ctx := context.Background()
				convey.So(svc.Start(ctx), convey.ShouldBeNil)
				defer svc.Stop()

				athletes, err := svc.Athletes(ctx)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(athletes, convey.ShouldBeEmpty)
			})
		})
	})
}
