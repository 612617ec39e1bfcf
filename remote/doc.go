// Package remote is the HTTP transport for computing step sequences out of
// process.
//
// Server exposes a gin router:
//
//	POST /v1/dijkstra  record Dijkstra for an engine.Request
//	POST /v1/steps     record any supported algorithm
//	GET  /v1/health    liveness
//	GET  /metrics      Prometheus scrape endpoint
//
// Replies are the JSON form of steps.Sequence. Edge statuses travel as their
// text names ("queued", "visited", ...), distances as integers.
//
// Client implements engine.Computer against such a server. Every failure it
// returns wraps engine.ErrRemoteComputation, and a reply is only handed back
// after engine.CheckReply accepted it, so a broken server can never start a
// playback cursor.
package remote
