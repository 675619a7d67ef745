package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	hmacext "github.com/alexellis/hmac/v2"
	"github.com/rs/cors"

	"github.com/marcus-crane/steamr/config"
	"github.com/marcus-crane/steamr/db"
	"github.com/marcus-crane/steamr/events"
	"github.com/marcus-crane/steamr/jobs"
	"github.com/marcus-crane/steamr/steam"
	"github.com/marcus-crane/steamr/utils"
)

const (
	SignatureHeader = "X-Steamr-Signature"

	defaultNewsCount     = 5
	defaultNewsMaxLength = 300
	historyLimit         = 30
)

var headerImageURL = utils.HeaderImageURL

// SteamAPI is the part of *steam.Client the routes use.
type SteamAPI interface {
	jobs.SteamAPI
	GetFriends(steamID string) ([]steam.Friend, error)
	GetPlayerStats(steamID, appID string) (steam.PlayerStats, error)
}

func renderJSONMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

func renderJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func renderSteamError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, steam.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, steam.ErrNoData):
		status = http.StatusNotFound
	}
	var steamErr *steam.Error
	message := err.Error()
	if errors.As(err, &steamErr) && steamErr.Message != "" {
		message = steamErr.Message
	}
	renderJSONMessage(w, status, message)
}

func parseUint16(value string, fallback uint16) (uint16, error) {
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(n), nil
}

func Register(mux *http.ServeMux, cfg config.Config, client SteamAPI, store db.Store) http.Handler {
	steamID := cfg.Steam.SteamID

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, "Welcome to steamr, a small API over the Steam Web API.\nYou can find the source code on <a href=\"https://github.com/marcus-crane/steamr\">Github</a>\n")
	})

	mux.HandleFunc("GET /api", func(w http.ResponseWriter, r *http.Request) {
		renderJSONMessage(w, http.StatusOK, "This is the base of steamr's API")
	})

	mux.HandleFunc("GET /api/v1", func(w http.ResponseWriter, r *http.Request) {
		renderJSONMessage(w, http.StatusOK, "This is the v1 endpoint of the API")
	})

	mux.HandleFunc("GET /api/v1/friends", func(w http.ResponseWriter, r *http.Request) {
		friends, err := client.GetFriends(steamID)
		if err != nil {
			renderSteamError(w, err)
			return
		}
		renderJSON(w, friends)
	})

	mux.HandleFunc("GET /api/v1/library", func(w http.ResponseWriter, r *http.Request) {
		library, err := client.GetLibrary(steamID)
		if err != nil {
			renderSteamError(w, err)
			return
		}
		renderJSON(w, library)
	})

	mux.HandleFunc("GET /api/v1/news/{appid}", func(w http.ResponseWriter, r *http.Request) {
		qVal := r.URL.Query()
		count, err := parseUint16(qVal.Get("count"), defaultNewsCount)
		if err != nil {
			renderJSONMessage(w, http.StatusBadRequest, "count must be a number between 0 and 65535")
			return
		}
		maxLength, err := parseUint16(qVal.Get("maxlength"), defaultNewsMaxLength)
		if err != nil {
			renderJSONMessage(w, http.StatusBadRequest, "maxlength must be a number between 0 and 65535")
			return
		}
		news, err := client.GetGameNews(r.PathValue("appid"), count, maxLength)
		if err != nil {
			renderSteamError(w, err)
			return
		}
		renderJSON(w, news)
	})

	mux.HandleFunc("GET /api/v1/stats/{appid}", func(w http.ResponseWriter, r *http.Request) {
		stats, err := client.GetPlayerStats(steamID, r.PathValue("appid"))
		if err != nil {
			renderSteamError(w, err)
			return
		}
		renderJSON(w, stats)
	})

	mux.HandleFunc("GET /api/v1/history", func(w http.ResponseWriter, r *http.Request) {
		results, err := store.GetLatestSnapshots(historyLimit)
		if err != nil {
			renderJSONMessage(w, http.StatusInternalServerError, err.Error())
			return
		}
		renderJSON(w, results)
	})

	mux.HandleFunc("GET /api/v1/history/{appid}", func(w http.ResponseWriter, r *http.Request) {
		appID, err := strconv.ParseUint(r.PathValue("appid"), 10, 64)
		if err != nil {
			renderJSONMessage(w, http.StatusBadRequest, "app ID must be numeric")
			return
		}
		results, err := store.GetPlaytimeHistory(appID, historyLimit)
		if err != nil {
			renderJSONMessage(w, http.StatusInternalServerError, err.Error())
			return
		}
		renderJSON(w, results)
	})

	mux.HandleFunc("GET /api/v1/apps/{appid}/colours", func(w http.ResponseWriter, r *http.Request) {
		appID := r.PathValue("appid")
		if _, err := strconv.ParseUint(appID, 10, 64); err != nil {
			renderJSONMessage(w, http.StatusBadRequest, "app ID must be numeric")
			return
		}
		imageUrl := fmt.Sprintf(headerImageURL, appID)
		colours, err := utils.ExtractDominantColours(utils.NewHTTPClient(), imageUrl)
		if err != nil {
			slog.Error("Failed to extract image content",
				slog.String("error", err.Error()),
				slog.String("image_url", imageUrl),
			)
			renderJSONMessage(w, http.StatusBadGateway, "Something went wrong fetching the cover for that app")
			return
		}
		renderJSON(w, map[string]any{"app_id": appID, "dominant_colours": colours})
	})

	mux.HandleFunc("POST /api/v1/snapshot", func(w http.ResponseWriter, r *http.Request) {
		secret := cfg.Steamr.WebhookSecret
		if secret == "" || steamID == "" {
			renderJSONMessage(w, http.StatusServiceUnavailable, "This endpoint is misconfigured and can not be used currently")
			return
		}
		signature := r.Header.Get(SignatureHeader)
		if signature == "" {
			renderJSONMessage(w, http.StatusUnauthorized, "no signature was provided")
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			renderJSONMessage(w, http.StatusBadRequest, "failed to read request body as part of signature validation")
			return
		}
		if err := hmacext.Validate(body, fmt.Sprintf("sha256=%s", signature), secret); err != nil {
			slog.With(slog.Any("error", err)).Error("Failed signature validation")
			renderJSONMessage(w, http.StatusUnauthorized, "signature failed validation")
			return
		}
		jobs.RecordLibrary(client, store, steamID)
		renderJSONMessage(w, http.StatusAccepted, "Snapshot recorded")
	})

	if events.Server != nil {
		mux.HandleFunc("/events", events.Server.ServeHTTP)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"http://localhost:1313", "http://localhost:8080"},
		AllowedMethods: []string{"GET"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
	})

	return c.Handler(mux)
}
