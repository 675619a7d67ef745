package steam

type playerStatsResponse struct {
	PlayerStats *PlayerStats `json:"playerstats"`
}

// PlayerStats holds a player's achievements and stats for one game.
type PlayerStats struct {
	SteamID      string        `json:"steamID"`
	GameName     string        `json:"gameName"`
	Achievements []Achievement `json:"achievements"`
	Stats        []Stat        `json:"stats"`
}

// Achievement is unlocked when Achieved is 1.
type Achievement struct {
	Name     string `json:"name"`
	Achieved int    `json:"achieved"`
}

// Stat is a named counter. Steam sends both whole and fractional values.
type Stat struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// GetPlayerStats returns the stats of the given player for appID.
func (c *Client) GetPlayerStats(steamID, appID string) (PlayerStats, error) {
	body, err := c.getRequest(userStatsEndpoint,
		Param{"steamid", steamID},
		Param{"appid", appID},
	)
	if err != nil {
		return PlayerStats{}, err
	}
	var res playerStatsResponse
	if err := decodeEnvelope(body, &res); err != nil {
		return PlayerStats{}, err
	}
	if res.PlayerStats == nil {
		return PlayerStats{Achievements: []Achievement{}, Stats: []Stat{}}, nil
	}
	stats := *res.PlayerStats
	stats.Achievements = nonNil(stats.Achievements)
	stats.Stats = nonNil(stats.Stats)
	return stats, nil
}
