package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/woolgather/dragonhunt/game"
	"github.com/woolgather/dragonhunt/search"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// The JSON API is already wide open for the local frontend; the live
	// socket follows suit.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveRequest is the first client message on the live socket: the grid to
// analyze and which pass to run.
type liveRequest struct {
	Grid    string `json:"grid"`
	Mode    string `json:"mode"` // "static" or "drift"
	MaxDist int    `json:"max_dist"`
}

// liveResult is the closing message once all frames have been streamed.
type liveResult struct {
	Done      bool `json:"done"`
	Reachable int  `json:"reachable"`
	Frames    int  `json:"frames"`
}

const liveWriteTimeout = 10 * time.Second

// handleLive upgrades to a websocket, runs the requested reachability pass
// server-side, and streams one frame per wave as it is computed.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Live] Upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(30 * time.Second))
	var req liveRequest
	if err := conn.ReadJSON(&req); err != nil {
		log.Printf("[Live] Bad request: %v", err)
		return
	}

	b, err := game.Parse(req.Grid)
	if err != nil {
		writeClose(conn, websocket.ClosePolicyViolation, err.Error())
		return
	}
	if req.MaxDist <= 0 || req.MaxDist > 100 {
		writeClose(conn, websocket.ClosePolicyViolation, "max_dist out of range")
		return
	}

	frames := 0
	streamErr := error(nil)
	obs := func(f search.Frame) {
		if streamErr != nil {
			return
		}
		conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
		if err := conn.WriteJSON(f); err != nil {
			streamErr = err
			return
		}
		frames++
	}

	var reachable int
	switch req.Mode {
	case "drift":
		reachable = search.DriftReach(b, req.MaxDist, obs)
	case "static", "":
		reachable = search.StaticReach(b, req.MaxDist, obs)
	default:
		writeClose(conn, websocket.ClosePolicyViolation, "unknown mode")
		return
	}
	if streamErr != nil {
		log.Printf("[Live] Stream aborted: %v", streamErr)
		return
	}

	conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
	if err := conn.WriteJSON(liveResult{Done: true, Reachable: reachable, Frames: frames}); err != nil {
		log.Printf("[Live] Result write failed: %v", err)
	}
}

func writeClose(conn *websocket.Conn, code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(liveWriteTimeout))
}
