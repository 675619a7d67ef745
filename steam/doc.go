// Package steam is a typed client for a handful of Steam Web API endpoints:
// friend lists, owned games, game news and per-game player stats.
//
// Every endpoint wraps its payload in an outer object keyed by an
// endpoint-specific name ("friendslist", "response", "appnews",
// "playerstats"). The client unwraps it and, when Steam leaves the payload
// out (which it does for private profiles), returns an empty value rather
// than an error.
package steam
