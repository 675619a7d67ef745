package events

import (
	"encoding/json"
	"log/slog"

	"github.com/r3labs/sse/v2"
)

const (
	PlaytimeStream = "playtime"
)

var Server *sse.Server

func Init() {
	server := sse.New()
	server.AutoReplay = false
	server.CreateStream(PlaytimeStream)
	Server = server
}

// Publish sends v as JSON to everyone listening on stream. It does nothing
// if Init hasn't been called.
func Publish(stream string, v any) {
	if Server == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to encode event",
			slog.String("stream", stream),
			slog.String("error", err.Error()),
		)
		return
	}
	Server.Publish(stream, &sse.Event{Data: data})
}
