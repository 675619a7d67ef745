package jobs

import (
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/marcus-crane/steamr/config"
	"github.com/marcus-crane/steamr/db"
	"github.com/marcus-crane/steamr/notify"
	"github.com/marcus-crane/steamr/steam"
)

const (
	libraryInterval = 15 * time.Minute
	newsInterval    = 30 * time.Minute
)

// SteamAPI is the part of *steam.Client the jobs use.
type SteamAPI interface {
	GetLibrary(steamID string) (steam.Library, error)
	GetGameNews(appID string, count, maxLength uint16) (steam.GameNews, error)
}

func SetupInBackground(cfg config.Config, client SteamAPI, store db.Store, notifier notify.Notifier) *gocron.Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	if cfg.Steam.SteamID != "" {
		if _, err := s.Every(libraryInterval).Do(RecordLibrary, client, store, cfg.Steam.SteamID); err != nil {
			slog.Error("Failed to schedule library job", slog.String("error", err.Error()))
		}
	} else {
		slog.Info("STEAM_ID is not set. Playtime will not be recorded.")
	}

	apps, _ := cfg.WatchedApps()
	if len(apps) > 0 {
		if _, err := s.Every(newsInterval).Do(CheckNews, client, store, notifier, apps, uint16(cfg.Steam.NewsCount)); err != nil {
			slog.Error("Failed to schedule news job", slog.String("error", err.Error()))
		}
	}

	slog.Info("Jobs scheduled. Scheduler not running yet.",
		slog.Int("jobs", len(s.Jobs())),
	)

	return s
}
