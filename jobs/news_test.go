package jobs

import (
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcus-crane/steamr/db"
	"github.com/marcus-crane/steamr/steam"
)

const (
	firstNews  = `{"gid":"1","title":"Old patch","url":"https://example.com/1","contents":"old","date":100,"appid":440}`
	secondNews = `{"gid":"2","title":"New patch","url":"https://example.com/2","contents":"<p>Fixed <b>hats</b></p>","date":200,"appid":440}`
)

func mockNews(items ...string) {
	body := `{"appnews":{"appid":440,"count":2,"newsitems":[`
	for i, item := range items {
		if i > 0 {
			body += ","
		}
		body += item
	}
	body += `]}}`
	gock.New(steam.APIBaseURL).
		Get("/ISteamNews/GetNewsForApp/v0002").
		MatchParam("appid", "440").
		MatchParam("count", "5").
		MatchParam("maxlength", "300").
		Reply(200).
		BodyString(body)
}

func TestCheckNews_FirstRunOnlySeeds(t *testing.T) {
	c := newSteamClient(t)
	store := db.NewMemoryStore()
	notifier := &fakeNotifier{}

	mockNews(firstNews)
	CheckNews(c, store, notifier, []string{"440"}, 5)

	assert.Empty(t, notifier.sent)
	seen, err := store.HasSeenNews("1")
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestCheckNews_NotifiesOnceForNewItems(t *testing.T) {
	c := newSteamClient(t)
	store := db.NewMemoryStore()
	notifier := &fakeNotifier{}

	mockNews(firstNews)
	CheckNews(c, store, notifier, []string{"440"}, 5)

	mockNews(secondNews, firstNews)
	CheckNews(c, store, notifier, []string{"440"}, 5)

	mockNews(secondNews, firstNews)
	CheckNews(c, store, notifier, []string{"440"}, 5)

	want := []notification{
		{Title: "New patch", Message: "Fixed hats", URL: "https://example.com/2"},
	}
	assert.Equal(t, want, notifier.sent)
	assert.True(t, gock.IsDone())
}

func TestCheckNews_EmptyFirstRunStillSeeds(t *testing.T) {
	c := newSteamClient(t)
	store := db.NewMemoryStore()
	notifier := &fakeNotifier{}

	mockNews()
	CheckNews(c, store, notifier, []string{"440"}, 5)
	assert.Empty(t, notifier.sent)

	mockNews(secondNews)
	CheckNews(c, store, notifier, []string{"440"}, 5)

	want := []notification{
		{Title: "New patch", Message: "Fixed hats", URL: "https://example.com/2"},
	}
	assert.Equal(t, want, notifier.sent)
	assert.True(t, gock.IsDone())
}

func TestCheckNews_SkipsBadApps(t *testing.T) {
	c := newSteamClient(t)
	store := db.NewMemoryStore()
	notifier := &fakeNotifier{}

	gock.New(steam.APIBaseURL).
		Get("/ISteamNews/GetNewsForApp/v0002").
		MatchParam("appid", "10").
		Reply(500)
	mockNews(firstNews)

	CheckNews(c, store, notifier, []string{"tf2", "10", "440"}, 5)

	seen, err := store.HasSeenNews("1")
	require.NoError(t, err)
	assert.True(t, seen, "a failing app should not stop the others")
	seeded, err := store.IsAppSeeded(10)
	require.NoError(t, err)
	assert.False(t, seeded, "a failed fetch should not seed the app")
	seeded, err = store.IsAppSeeded(440)
	require.NoError(t, err)
	assert.True(t, seeded)
}
