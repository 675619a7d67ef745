package models

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/marcus-crane/steamr/steam"
)

// PlaytimeSnapshot is one observation of how long a game has been played.
// A new snapshot is only stored when the playtime changes since the ID is
// derived from the observed values.
type PlaytimeSnapshot struct {
	ID              string `db:"id" json:"id"`
	SteamID         string `db:"steam_id" json:"steam_id"`
	AppID           uint64 `db:"app_id" json:"app_id"`
	Name            string `db:"name" json:"name"`
	PlaytimeForever int    `db:"playtime_forever" json:"playtime_forever"`
	Playtime2Weeks  int    `db:"playtime_2weeks" json:"playtime_2weeks"`
	CreatedAt       int64  `db:"created_at" json:"created_at"`
}

// SeenNews records a news item that has already been announced.
type SeenNews struct {
	NewsID    string `db:"news_id" json:"news_id"`
	AppID     uint64 `db:"app_id" json:"app_id"`
	Title     string `db:"title" json:"title"`
	URL       string `db:"url" json:"url"`
	Date      int64  `db:"date" json:"date"`
	CreatedAt int64  `db:"created_at" json:"created_at"`
}

func GenerateSnapshotID(steamID string, game steam.Game) string {
	hashString := fmt.Sprintf("%s-%d-%d-%d",
		steamID,
		game.AppID,
		game.PlaytimeForever,
		game.Playtime2Weeks,
	)
	return fmt.Sprintf("%s:%d:%d", steamID, game.AppID, xxhash.Sum64String(hashString))
}

func NewPlaytimeSnapshot(steamID string, game steam.Game, now time.Time) PlaytimeSnapshot {
	return PlaytimeSnapshot{
		ID:              GenerateSnapshotID(steamID, game),
		SteamID:         steamID,
		AppID:           game.AppID,
		Name:            game.Name,
		PlaytimeForever: game.PlaytimeForever,
		Playtime2Weeks:  game.Playtime2Weeks,
		CreatedAt:       now.Unix(),
	}
}

func NewSeenNews(item steam.News, appID uint64, now time.Time) SeenNews {
	if item.AppID != 0 {
		appID = item.AppID
	}
	return SeenNews{
		NewsID:    item.NewsID,
		AppID:     appID,
		Title:     item.Title,
		URL:       item.URL,
		Date:      item.Date,
		CreatedAt: now.Unix(),
	}
}
