package db

import (
	"embed"
	"fmt"
	"sort"
	"sync"

	"github.com/marcus-crane/steamr/models"
)

// MemoryStore keeps everything in memory. It is handy for tests and for
// running without a database file.
type MemoryStore struct {
	m         *sync.Mutex
	snapshots []models.PlaytimeSnapshot
	news      map[string]models.SeenNews
	seeded    map[uint64]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		m:         new(sync.Mutex),
		snapshots: []models.PlaytimeSnapshot{},
		news:      map[string]models.SeenNews{},
		seeded:    map[uint64]int64{},
	}
}

func (ms *MemoryStore) ApplyMigrations(migrations embed.FS) error {
	return nil
}

func (ms *MemoryStore) InsertSnapshot(s models.PlaytimeSnapshot) (bool, error) {
	ms.m.Lock()
	defer ms.m.Unlock()
	for _, existing := range ms.snapshots {
		if existing.ID == s.ID {
			return false, nil
		}
	}
	ms.snapshots = append(ms.snapshots, s)
	return true, nil
}

func (ms *MemoryStore) GetPlaytimeHistory(appID uint64, limit int) ([]models.PlaytimeSnapshot, error) {
	return ms.latest(limit, func(s models.PlaytimeSnapshot) bool { return s.AppID == appID })
}

func (ms *MemoryStore) GetLatestSnapshots(limit int) ([]models.PlaytimeSnapshot, error) {
	return ms.latest(limit, func(models.PlaytimeSnapshot) bool { return true })
}

func (ms *MemoryStore) latest(limit int, keep func(models.PlaytimeSnapshot) bool) ([]models.PlaytimeSnapshot, error) {
	out := []models.PlaytimeSnapshot{}
	if limit <= 0 {
		return out, fmt.Errorf("must request at least one historical item")
	}
	ms.m.Lock()
	defer ms.m.Unlock()
	for _, s := range ms.snapshots {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (ms *MemoryStore) HasSeenNews(newsID string) (bool, error) {
	ms.m.Lock()
	defer ms.m.Unlock()
	_, ok := ms.news[newsID]
	return ok, nil
}

func (ms *MemoryStore) IsAppSeeded(appID uint64) (bool, error) {
	ms.m.Lock()
	defer ms.m.Unlock()
	_, ok := ms.seeded[appID]
	return ok, nil
}

func (ms *MemoryStore) MarkAppSeeded(appID uint64, seededAt int64) error {
	ms.m.Lock()
	defer ms.m.Unlock()
	if _, ok := ms.seeded[appID]; !ok {
		ms.seeded[appID] = seededAt
	}
	return nil
}

func (ms *MemoryStore) MarkNewsSeen(item models.SeenNews) error {
	ms.m.Lock()
	defer ms.m.Unlock()
	if _, ok := ms.news[item.NewsID]; !ok {
		ms.news[item.NewsID] = item
	}
	return nil
}
