// Package main room rental API.
//
// @title           Room Rental API
// @version         1.0
// @description     Room rental marketplace (properties, bookings, reviews, favorites, auth).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/primeitclub/the-newbies/app/echoServer"
	authctrl "github.com/primeitclub/the-newbies/app/echoServer/controller/auth"
	bookingctrl "github.com/primeitclub/the-newbies/app/echoServer/controller/booking"
	favoritectrl "github.com/primeitclub/the-newbies/app/echoServer/controller/favorite"
	propertyctrl "github.com/primeitclub/the-newbies/app/echoServer/controller/property"
	reviewctrl "github.com/primeitclub/the-newbies/app/echoServer/controller/review"
	storagectrl "github.com/primeitclub/the-newbies/app/echoServer/controller/storage"
	"github.com/primeitclub/the-newbies/app/echoServer/validation"
	"github.com/primeitclub/the-newbies/config"
	"github.com/primeitclub/the-newbies/demo"
	bookingrepo "github.com/primeitclub/the-newbies/repository/booking"
	favoriterepo "github.com/primeitclub/the-newbies/repository/favorite"
	propertyrepo "github.com/primeitclub/the-newbies/repository/property"
	reviewrepo "github.com/primeitclub/the-newbies/repository/review"
	sessionrepo "github.com/primeitclub/the-newbies/repository/session"
	storagerepo "github.com/primeitclub/the-newbies/repository/storage"
	userrepo "github.com/primeitclub/the-newbies/repository/user"
	authsvc "github.com/primeitclub/the-newbies/service/auth"
	bookingsvc "github.com/primeitclub/the-newbies/service/booking"
	favoritesvc "github.com/primeitclub/the-newbies/service/favorite"
	propertysvc "github.com/primeitclub/the-newbies/service/property"
	reviewsvc "github.com/primeitclub/the-newbies/service/review"
	storagesvc "github.com/primeitclub/the-newbies/service/storage"
	"github.com/primeitclub/the-newbies/util/database"
)

// repos bundles one data source, chosen once at startup.
type repos struct {
	property propertyrepo.Repo
	booking  bookingrepo.Repo
	review   reviewrepo.Repo
	favorite favoriterepo.Repo
	user     userrepo.Repo
	session  sessionrepo.Repo
	demoMode bool
}

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	r := buildRepos(ctx, cfg, log)

	// services
	ps := propertysvc.New(r.property)
	bs := bookingsvc.New(r.booking, r.property)
	rs := reviewsvc.New(r.review)
	fs := favoritesvc.New(r.favorite)
	as := authsvc.New(r.user, r.session, cfg.JWTSecret, r.demoMode)
	ss := storagesvc.New(storagerepo.NewDisk(cfg.StorageRoot))

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	propertyC := &propertyctrl.Controller{Svc: ps, V: v, Log: log}
	bookingC := &bookingctrl.Controller{Svc: bs, V: v, Log: log}
	reviewC := &reviewctrl.Controller{Svc: rs, V: v, Log: log}
	favoriteC := &favoritectrl.Controller{Svc: fs, V: v, Log: log}
	storageC := &storagectrl.Controller{Svc: ss, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":    "ok",
			"demo_mode": r.demoMode,
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:     authC,
		Property: propertyC,
		Booking:  bookingC,
		Review:   reviewC,
		Favorite: favoriteC,
		Storage:  storageC,

		JWTSecret:   cfg.JWTSecret,
		StorageRoot: cfg.StorageRoot,
	})

	// stale pending bookings get rejected in the background
	cleaner := bookingsvc.NewCleaner(r.booking, cfg.BookingHold)
	stop := make(chan struct{})
	go runCleaner(ctx, cleaner, cfg.CleanerInterval, stop, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	log.Info("starting server", "port", port, "mode", cfg.Mode, "demo", r.demoMode)

	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	close(stop)
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
}

// buildRepos picks the data source. Remote requires Postgres and Redis;
// demo runs on the seeded catalog; auto tries remote and degrades.
func buildRepos(ctx context.Context, cfg config.App, log *slog.Logger) repos {
	if cfg.Mode != config.ModeDemo && cfg.DatabaseURL != "" {
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err == nil {
			rdb, rerr := sessionrepo.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
			if rerr == nil {
				log.Info("using remote data source")
				return repos{
					property: propertyrepo.New(db),
					booking:  bookingrepo.New(db),
					review:   reviewrepo.New(db),
					favorite: favoriterepo.New(db),
					user:     userrepo.New(db),
					session:  sessionrepo.NewRedis(rdb),
				}
			}
			err = rerr
		}
		if cfg.Mode == config.ModeRemote {
			log.Error("remote data source unavailable", "err", err)
			os.Exit(1)
		}
		log.Warn("database not configured, using demo data", "err", err)
	} else if cfg.Mode == config.ModeRemote {
		log.Error("remote mode requires DATABASE_URL")
		os.Exit(1)
	}

	return repos{
		property: propertyrepo.NewMemory(demo.Properties()),
		booking:  bookingrepo.NewMemory(),
		review:   reviewrepo.NewMemory(demo.Reviews),
		favorite: favoriterepo.NewMemory(),
		user:     userrepo.NewMemory(demo.Users()),
		session:  sessionrepo.NewSlot(cfg.SessionSlotPath),
		demoMode: true,
	}
}

func runCleaner(ctx context.Context, c bookingsvc.Cleaner, every time.Duration, stop <-chan struct{}, log *slog.Logger) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
			n, err := c.RejectStale(ctx)
			if err != nil {
				log.Error("booking cleanup", "err", err)
				continue
			}
			if n > 0 {
				log.Info("rejected stale bookings", "count", n)
			}
		}
	}
}
