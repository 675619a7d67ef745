package db

import (
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/marcus-crane/steamr/models"

	_ "modernc.org/sqlite"
)

type SqliteStore struct {
	DB *sqlx.DB
}

func NewSqliteStore(dsn string) (Store, error) {
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	return &SqliteStore{
		DB: db,
	}, nil
}

func (s *SqliteStore) ApplyMigrations(migrations embed.FS) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		return err
	}

	if err := goose.Up(s.DB.DB, "."); err != nil {
		return err
	}

	return nil
}

// InsertSnapshot stores a snapshot and reports whether it was new. Snapshot
// IDs are derived from the observed playtime so an unchanged game is a no-op.
func (s *SqliteStore) InsertSnapshot(snapshot models.PlaytimeSnapshot) (bool, error) {
	res, err := s.DB.NamedExec(`
	INSERT INTO playtime_snapshots
	(id, steam_id, app_id, name, playtime_forever, playtime_2weeks, created_at)
	VALUES (:id, :steam_id, :app_id, :name, :playtime_forever, :playtime_2weeks, :created_at)
	ON CONFLICT (id) DO NOTHING`,
		snapshot)
	if err != nil {
		return false, fmt.Errorf("failed to insert snapshot: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return inserted > 0, nil
}

func (s *SqliteStore) GetPlaytimeHistory(appID uint64, limit int) ([]models.PlaytimeSnapshot, error) {
	sl := []models.PlaytimeSnapshot{}
	if limit <= 0 {
		return sl, fmt.Errorf("must request at least one historical item")
	}
	if err := s.DB.Select(&sl, "SELECT id, steam_id, app_id, name, playtime_forever, playtime_2weeks, created_at FROM playtime_snapshots WHERE app_id = ? ORDER BY created_at desc LIMIT ?", appID, limit); err != nil {
		return sl, err
	}
	return sl, nil
}

func (s *SqliteStore) GetLatestSnapshots(limit int) ([]models.PlaytimeSnapshot, error) {
	sl := []models.PlaytimeSnapshot{}
	if limit <= 0 {
		return sl, fmt.Errorf("must request at least one historical item")
	}
	if err := s.DB.Select(&sl, "SELECT id, steam_id, app_id, name, playtime_forever, playtime_2weeks, created_at FROM playtime_snapshots ORDER BY created_at desc LIMIT ?", limit); err != nil {
		return sl, err
	}
	return sl, nil
}

func (s *SqliteStore) HasSeenNews(newsID string) (bool, error) {
	var count int
	if err := s.DB.Get(&count, "SELECT COUNT(*) FROM seen_news WHERE news_id = ?", newsID); err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsAppSeeded reports whether the news for an app has been checked at least
// once, even if that check found no articles.
func (s *SqliteStore) IsAppSeeded(appID uint64) (bool, error) {
	var count int
	if err := s.DB.Get(&count, "SELECT COUNT(*) FROM news_apps WHERE app_id = ?", appID); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *SqliteStore) MarkAppSeeded(appID uint64, seededAt int64) error {
	_, err := s.DB.Exec("INSERT INTO news_apps (app_id, seeded_at) VALUES (?, ?) ON CONFLICT (app_id) DO NOTHING", appID, seededAt)
	return err
}

func (s *SqliteStore) MarkNewsSeen(item models.SeenNews) error {
	_, err := s.DB.NamedExec(`
	INSERT INTO seen_news (news_id, app_id, title, url, date, created_at)
	VALUES (:news_id, :app_id, :title, :url, :date, :created_at)
	ON CONFLICT (news_id) DO NOTHING`,
		item)
	return err
}
