package jobs

import (
	"log/slog"
	"time"

	"github.com/marcus-crane/steamr/db"
	"github.com/marcus-crane/steamr/events"
	"github.com/marcus-crane/steamr/models"
)

// RecordLibrary stores a playtime snapshot for every game in the user's
// library whose playtime changed since the last run, and publishes the new
// snapshots on the playtime stream.
func RecordLibrary(client SteamAPI, store db.Store, steamID string) {
	slog.Debug("Recording Steam library", slog.String("steam_id", steamID))

	library, err := client.GetLibrary(steamID)
	if err != nil {
		slog.Error("Failed to fetch Steam library",
			slog.String("error", err.Error()),
			slog.String("steam_id", steamID),
		)
		return
	}

	if len(library.Games) == 0 {
		slog.Debug("Steam library is empty or private", slog.String("steam_id", steamID))
		return
	}

	now := time.Now().UTC()
	recorded := 0
	for _, game := range library.Games {
		snapshot := models.NewPlaytimeSnapshot(steamID, game, now)
		inserted, err := store.InsertSnapshot(snapshot)
		if err != nil {
			slog.Error("Failed to save playtime snapshot",
				slog.String("error", err.Error()),
				slog.String("title", game.Name),
			)
			continue
		}
		if !inserted {
			continue
		}
		recorded++
		events.Publish(events.PlaytimeStream, snapshot)
	}

	slog.Info("Recorded Steam playtime",
		slog.Int("games", len(library.Games)),
		slog.Int("changed", recorded),
	)
}
