package db

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcus-crane/steamr/migrations"
	"github.com/marcus-crane/steamr/models"
	"github.com/marcus-crane/steamr/steam"

	_ "github.com/mattn/go-sqlite3"
)

// goose keeps its settings in package state so these tests don't run in
// parallel.
func migratedStore(t *testing.T) *SqliteStore {
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		db.Close()
	})
	s := &SqliteStore{DB: db}
	require.NoError(t, s.ApplyMigrations(migrations.GetMigrations()))
	return s
}

func TestSqliteStore_ApplyMigrationsTwice(t *testing.T) {
	s := migratedStore(t)
	assert.NoError(t, s.ApplyMigrations(migrations.GetMigrations()))
}

func TestSqliteStore_InsertSnapshotDeduplicates(t *testing.T) {
	s := migratedStore(t)
	game := steam.Game{AppID: 10, Name: "Counter-Strike", PlaytimeForever: 100}

	first := models.NewPlaytimeSnapshot("1", game, time.Unix(100, 0))
	inserted, err := s.InsertSnapshot(first)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = s.InsertSnapshot(models.NewPlaytimeSnapshot("1", game, time.Unix(200, 0)))
	require.NoError(t, err)
	assert.False(t, inserted, "unchanged playtime should not be stored again")

	game.PlaytimeForever = 160
	game.Playtime2Weeks = 60
	second := models.NewPlaytimeSnapshot("1", game, time.Unix(300, 0))
	inserted, err = s.InsertSnapshot(second)
	require.NoError(t, err)
	assert.True(t, inserted)

	history, err := s.GetPlaytimeHistory(10, 30)
	require.NoError(t, err)
	assert.Equal(t, []models.PlaytimeSnapshot{second, first}, history)

	history, err = s.GetPlaytimeHistory(20, 30)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSqliteStore_LatestSnapshotsAcrossApps(t *testing.T) {
	s := migratedStore(t)
	a := models.NewPlaytimeSnapshot("1", steam.Game{AppID: 10, Name: "a", PlaytimeForever: 1}, time.Unix(100, 0))
	b := models.NewPlaytimeSnapshot("1", steam.Game{AppID: 20, Name: "b", PlaytimeForever: 2}, time.Unix(200, 0))
	for _, snapshot := range []models.PlaytimeSnapshot{a, b} {
		_, err := s.InsertSnapshot(snapshot)
		require.NoError(t, err)
	}

	latest, err := s.GetLatestSnapshots(1)
	require.NoError(t, err)
	assert.Equal(t, []models.PlaytimeSnapshot{b}, latest)
}

func TestSqliteStore_MarkNewsSeen(t *testing.T) {
	s := migratedStore(t)
	item := models.SeenNews{NewsID: "123", AppID: 10, Title: "Patch", URL: "https://example.com", Date: 1, CreatedAt: 2}

	require.NoError(t, s.MarkNewsSeen(item))
	require.NoError(t, s.MarkNewsSeen(item))

	seen, err := s.HasSeenNews("123")
	require.NoError(t, err)
	assert.True(t, seen)

	seen, err = s.HasSeenNews("456")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestMigratedStore_MarkAppSeeded(t *testing.T) {
	s := migratedStore(t)

	seeded, err := s.IsAppSeeded(10)
	require.NoError(t, err)
	assert.False(t, seeded)

	require.NoError(t, s.MarkAppSeeded(10, 100))
	require.NoError(t, s.MarkAppSeeded(10, 200))

	seeded, err = s.IsAppSeeded(10)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = s.IsAppSeeded(20)
	require.NoError(t, err)
	assert.False(t, seeded, "seeding one app should not seed another")
}
