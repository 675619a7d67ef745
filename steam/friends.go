package steam

import (
	"fmt"
	"time"
)

// Relationship qualifies a friend list entry. Only friends are requested so
// it is the only value Steam sends back.
type Relationship string

const RelationshipFriend Relationship = "friend"

// UnmarshalText rejects any relationship other than friend.
func (r *Relationship) UnmarshalText(text []byte) error {
	switch Relationship(text) {
	case RelationshipFriend:
		*r = RelationshipFriend
		return nil
	}
	return fmt.Errorf("unknown relationship %q", string(text))
}

type friendsResponse struct {
	FriendsList *FriendsList `json:"friendslist"`
}

type FriendsList struct {
	Friends []Friend `json:"friends"`
}

// Friend is one edge of a user's friend list.
type Friend struct {
	SteamID      string       `json:"steamid"`
	Relationship Relationship `json:"relationship"`
	FriendSince  int64        `json:"friend_since"` // unix seconds
}

// Since returns FriendSince as a time.Time in UTC.
func (f Friend) Since() time.Time {
	return time.Unix(f.FriendSince, 0).UTC()
}

func (f Friend) String() string {
	return fmt.Sprintf("Friend ID: %s, friends since %d", f.SteamID, f.FriendSince)
}

// GetFriends returns the friends of the user with the given Steam ID. A
// response without a friend list yields an empty slice.
func (c *Client) GetFriends(steamID string) ([]Friend, error) {
	body, err := c.getRequest(friendListEndpoint,
		Param{"steamid", steamID},
		Param{"relationship", string(RelationshipFriend)},
	)
	if err != nil {
		return nil, err
	}
	var res friendsResponse
	if err := decodeEnvelope(body, &res); err != nil {
		return nil, err
	}
	if res.FriendsList == nil {
		return []Friend{}, nil
	}
	return nonNil(res.FriendsList.Friends), nil
}
