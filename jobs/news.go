package jobs

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/marcus-crane/steamr/db"
	"github.com/marcus-crane/steamr/models"
	"github.com/marcus-crane/steamr/notify"
	"github.com/marcus-crane/steamr/utils"
)

const (
	newsMaxLength = 300
)

// CheckNews looks for articles we haven't seen yet for each watched app and
// sends a notification for each one. The first successful check of an app
// only records its current articles, even when there are none, otherwise
// adding an app would send a burst of old news.
func CheckNews(client SteamAPI, store db.Store, notifier notify.Notifier, appIDs []string, count uint16) {
	for _, appID := range appIDs {
		checkAppNews(client, store, notifier, appID, count)
	}
}

func checkAppNews(client SteamAPI, store db.Store, notifier notify.Notifier, appID string, count uint16) {
	id, err := strconv.ParseUint(appID, 10, 64)
	if err != nil {
		slog.Error("Invalid app ID for news", slog.String("app_id", appID))
		return
	}

	seeded, err := store.IsAppSeeded(id)
	if err != nil {
		slog.Error("Failed to check news history",
			slog.String("error", err.Error()),
			slog.String("app_id", appID),
		)
		return
	}

	news, err := client.GetGameNews(appID, count, newsMaxLength)
	if err != nil {
		slog.Error("Failed to fetch Steam news",
			slog.String("error", err.Error()),
			slog.String("app_id", appID),
		)
		return
	}

	now := time.Now().UTC()
	for _, item := range news.Items {
		seen, err := store.HasSeenNews(item.NewsID)
		if err != nil {
			slog.Error("Failed to look up news item",
				slog.String("error", err.Error()),
				slog.String("gid", item.NewsID),
			)
			continue
		}
		if seen {
			continue
		}
		if err := store.MarkNewsSeen(models.NewSeenNews(item, id, now)); err != nil {
			slog.Error("Failed to save news item",
				slog.String("error", err.Error()),
				slog.String("gid", item.NewsID),
			)
			continue
		}
		if !seeded {
			continue
		}

		body, err := utils.StripHTML(item.Contents)
		if err != nil {
			body = item.Contents
		}
		if err := notifier.Notify(item.Title, body, item.URL); err != nil {
			slog.Error("Failed to send news notification",
				slog.String("error", err.Error()),
				slog.String("title", item.Title),
			)
			continue
		}
		slog.Info("Sent news notification",
			slog.String("app_id", appID),
			slog.String("title", item.Title),
		)
	}

	if !seeded {
		if err := store.MarkAppSeeded(id, now.Unix()); err != nil {
			slog.Error("Failed to record news seeding",
				slog.String("error", err.Error()),
				slog.String("app_id", appID),
			)
		}
	}
}
