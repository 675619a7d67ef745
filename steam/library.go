package steam

import "fmt"

type ownedGamesResponse struct {
	Response *Library `json:"response"`
}

// Library is what the GetOwnedGames endpoint returns for a user.
type Library struct {
	GameCount int    `json:"game_count"`
	Games     []Game `json:"games"`
}

// Game is an owned game and its playtime. Playtimes are in minutes.
type Game struct {
	AppID                  uint64 `json:"appid"`
	Name                   string `json:"name"`
	PlaytimeForever        int    `json:"playtime_forever"`
	PlaytimeWindowsForever int    `json:"playtime_windows_forever"`
	PlaytimeMacForever     int    `json:"playtime_mac_forever"`
	PlaytimeLinuxForever   int    `json:"playtime_linux_forever"`
	Playtime2Weeks         int    `json:"playtime_2weeks"`
	ImgIconURL             string `json:"img_icon_url"`
	RTimeLastPlayed        int64  `json:"rtime_last_played"`
}

// Equal reports whether two games are the same app. Names and playtimes are
// ignored.
func (g Game) Equal(other Game) bool {
	return g.AppID == other.AppID
}

func (g Game) String() string {
	return fmt.Sprintf("Game: %s, total time played: %d", g.Name, g.PlaytimeForever)
}

// Find returns the game with the given app ID, if it is in the library.
func (l Library) Find(appID uint64) (Game, bool) {
	for _, g := range l.Games {
		if g.AppID == appID {
			return g, true
		}
	}
	return Game{}, false
}

// GetLibrary returns the games owned by the user with the given Steam ID,
// including app info and played free games. Steam omits the payload for
// private profiles, in which case an empty Library is returned.
func (c *Client) GetLibrary(steamID string) (Library, error) {
	body, err := c.getRequest(ownedGamesEndpoint,
		Param{"steamid", steamID},
		Param{"include_appInfo", "true"},
		Param{"include_played_free_games", "true"},
	)
	if err != nil {
		return Library{}, err
	}
	var res ownedGamesResponse
	if err := decodeEnvelope(body, &res); err != nil {
		return Library{}, err
	}
	if res.Response == nil {
		return Library{Games: []Game{}}, nil
	}
	lib := *res.Response
	lib.Games = nonNil(lib.Games)
	return lib, nil
}
