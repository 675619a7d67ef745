package steam

import (
	"strconv"
	"time"
)

type gameNewsResponse struct {
	AppNews *GameNews `json:"appnews"`
}

// GameNews holds the articles returned for an app along with the total
// number of articles Steam has for it.
type GameNews struct {
	AppID uint64 `json:"appid"`
	Items []News `json:"newsitems"`
	Count int    `json:"count"`
}

// News is a single article.
type News struct {
	NewsID    string `json:"gid"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Author    string `json:"author"`
	Contents  string `json:"contents"`
	FeedLabel string `json:"feedlabel"`
	Date      int64  `json:"date"` // unix seconds
	FeedName  string `json:"feedname"`
	AppID     uint64 `json:"appid"`
}

// PublishedAt returns Date as a time.Time in UTC.
func (n News) PublishedAt() time.Time {
	return time.Unix(n.Date, 0).UTC()
}

// GetGameNews returns up to count articles for appID, with contents
// truncated to roughly maxLength characters. Steam doesn't apply maxLength
// strictly (hyperlinks are kept whole, for example) so don't rely on it.
//
// This endpoint works without an API key.
func (c *Client) GetGameNews(appID string, count, maxLength uint16) (GameNews, error) {
	body, err := c.getRequest(gameNewsEndpoint,
		Param{"appid", appID},
		Param{"count", strconv.Itoa(int(count))},
		Param{"maxlength", strconv.Itoa(int(maxLength))},
	)
	if err != nil {
		return GameNews{}, err
	}
	var res gameNewsResponse
	if err := decodeEnvelope(body, &res); err != nil {
		return GameNews{}, err
	}
	if res.AppNews == nil {
		return GameNews{Items: []News{}}, nil
	}
	news := *res.AppNews
	news.Items = nonNil(news.Items)
	return news, nil
}
