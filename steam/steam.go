package steam

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/marcus-crane/steamr/utils"
)

const (
	APIBaseURL = "https://api.steampowered.com"

	friendListEndpoint = "/ISteamUser/GetFriendList/v0001"
	ownedGamesEndpoint = "/IPlayerService/GetOwnedGames/v0001"
	gameNewsEndpoint   = "/ISteamNews/GetNewsForApp/v0002"
	userStatsEndpoint  = "/ISteamUserStats/GetUserStatsForGame/v0002"
)

// Client holds the developer's Steam API key and the HTTP client used to
// talk to the Steam Web API. Both are only read after construction so a
// single Client can be shared between goroutines.
type Client struct {
	APIKey     string
	APIBaseURL string
	HTTPClient *http.Client
}

// Param is a single query parameter. Parameters are sent in the order given.
type Param struct {
	Key   string
	Value string
}

// NewClient returns a Client carrying a developer API key.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		APIBaseURL: APIBaseURL,
		HTTPClient: utils.NewHTTPClient(),
	}
}

// NewAnonymousClient returns a Client without an API key. Only endpoints
// that tolerate anonymous access (such as game news) will work with it.
func NewAnonymousClient() *Client {
	return NewClient("")
}

func (c *Client) buildURL(endpoint string, params ...Param) string {
	var query strings.Builder
	query.WriteString("key=")
	query.WriteString(url.QueryEscape(c.APIKey))
	for _, p := range params {
		query.WriteByte('&')
		query.WriteString(url.QueryEscape(p.Key))
		query.WriteByte('=')
		query.WriteString(url.QueryEscape(p.Value))
	}
	return fmt.Sprintf("%s%s?%s", strings.TrimSuffix(c.APIBaseURL, "/"), endpoint, query.String())
}

// getRequest issues a GET against endpoint and returns the body of a 200
// response. Any other outcome is reported as an *Error.
func (c *Client) getRequest(endpoint string, params ...Param) ([]byte, error) {
	if c.APIKey == "" {
		slog.Warn("Not using a valid API key. Is this on purpose?",
			slog.String("endpoint", endpoint),
		)
	}
	req, err := http.NewRequest(http.MethodGet, c.buildURL(endpoint, params...), nil)
	if err != nil {
		return nil, requestFailed("Something went wrong with your request", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, requestFailed("Something went wrong with your request", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, &Error{
			Kind:    KindUnauthorized,
			Message: "Unauthorized. Either you have used an invalid API key, or the data you wanted to access is private",
		}
	default:
		slog.Debug("Received a non-200 status code from Steam",
			slog.String("endpoint", endpoint),
			slog.String("status", res.Status),
		)
		return nil, &Error{
			Kind:    KindRequestFailed,
			Message: fmt.Sprintf("Steam could not process your request (status %d). Double-check your provided parameters (Steam ID, app ID, ...).", res.StatusCode),
		}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, requestFailed("Failed to read Steam response", err)
	}
	return body, nil
}
