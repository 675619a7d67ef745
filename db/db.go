package db

import (
	"embed"

	"github.com/marcus-crane/steamr/models"
)

type Store interface {
	ApplyMigrations(migrations embed.FS) error
	InsertSnapshot(snapshot models.PlaytimeSnapshot) (bool, error)
	GetPlaytimeHistory(appID uint64, limit int) ([]models.PlaytimeSnapshot, error)
	GetLatestSnapshots(limit int) ([]models.PlaytimeSnapshot, error)
	HasSeenNews(newsID string) (bool, error)
	IsAppSeeded(appID uint64) (bool, error)
	MarkAppSeeded(appID uint64, seededAt int64) error
	MarkNewsSeen(item models.SeenNews) error
}
