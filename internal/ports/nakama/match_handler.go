package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"sync/atomic"
	"time"

	"skat/internal/bot"
	"skat/internal/config"
	"skat/internal/game"

	"github.com/heroiclabs/nakama-common/runtime"
)

// eventQueueSize bounds the server event backlog between match loop ticks.
const eventQueueSize = 256

// MatchLabel is the JSON label Nakama indexes for match listing queries.
type MatchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// MatchState holds the authoritative runtime state for the Nakama match
// handler. The engine runs each game on its own goroutine; the match loop
// and the game goroutine only meet through the event queue, the per-player
// answer channels and the table's pause gate.
type MatchState struct {
	Seats     [3]string                   // user ids, empty string means open
	OwnerSeat int                         // seat of the match owner, -1 if none
	Tick      int64                       // current match tick
	Presences map[string]runtime.Presence // userID -> presence

	Engine  config.Engine
	Events  chan outEvent
	Proxies map[string]*HumanProxy
	Table   *game.Table
	Running atomic.Bool // a game goroutine is active

	wasRunning           bool
	lastSinglePlayerTick int64
	tableSeats           [3]string // seat lineup the current table was built for
}

func (ms *MatchState) openSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) humanCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !IsBotUserID(seat) {
			count++
		}
	}
	return count
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seat := range ms.Seats {
		if seat == userID {
			return i
		}
	}
	return -1
}

func firstHumanSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" && !IsBotUserID(userID) {
			return i
		}
	}
	return -1
}

type matchHandler struct{}

func newMatchHandler() *matchHandler { return &matchHandler{} }

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	engine := config.Default()
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if path := env["skat_config_path"]; path != "" {
			loaded, err := config.Load(path)
			if err != nil {
				logger.Warn("MatchInit: could not load engine config from %s: %v", path, err)
			} else {
				engine = loaded
			}
		}
	}

	state := &MatchState{
		OwnerSeat: -1,
		Presences: make(map[string]runtime.Presence),
		Engine:    engine,
		Events:    make(chan outEvent, eventQueueSize),
		Proxies:   make(map[string]*HumanProxy),
	}

	labelBytes, err := json.Marshal(&MatchLabel{Open: 3, Game: "skat", Phase: "lobby"})
	if err != nil {
		logger.Error("MatchInit: failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	if matchState.openSeatCount() > 0 {
		return state, true, ""
	}

	// A bot seat can be reclaimed while the table is in the lobby.
	if !matchState.Running.Load() {
		for _, seat := range matchState.Seats {
			if IsBotUserID(seat) {
				return state, true, ""
			}
		}
	}
	return state, false, "match full"
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		assigned := false
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}

		if !assigned && !matchState.Running.Load() {
			for i, seatUserID := range matchState.Seats {
				if IsBotUserID(seatUserID) {
					logger.Info("MatchJoin: replacing bot %s with %s in seat %d", seatUserID, p.GetUserId(), i)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: user %s joined but no seat was available", p.GetUserId())
		}
	}

	if matchState.OwnerSeat < 0 || !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = firstHumanSeat(matchState.Seats[:])
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastLobbyState(matchState, dispatcher, logger)
	return matchState
}

func isHumanSeat(seats []string, seat int) bool {
	if seat < 0 || seat >= len(seats) {
		return false
	}
	return seats[seat] != "" && !IsBotUserID(seats[seat])
}

func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		// The proxy stays registered while a game runs; its prompts time
		// out and the engine substitutes, so the table never stalls on a
		// vanished player.
		if !matchState.Running.Load() {
			delete(matchState.Proxies, p.GetUserId())
			if seat := matchState.seatOf(p.GetUserId()); seat >= 0 {
				matchState.Seats[seat] = ""
			}
		}
	}

	matchState.OwnerSeat = firstHumanSeat(matchState.Seats[:])

	if matchState.humanCount() == 0 && !matchState.Running.Load() {
		logger.Info("MatchLeave: terminating match with no humans")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastLobbyState(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}
	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(matchState, dispatcher, logger, msg)
		case OpPauseGame:
			if matchState.Table != nil && matchState.Running.Load() {
				matchState.Table.Pause()
				mh.broadcastLobbyState(matchState, dispatcher, logger)
			}
		case OpResumeGame:
			if matchState.Table != nil {
				matchState.Table.Resume()
				mh.broadcastLobbyState(matchState, dispatcher, logger)
			}
		case OpBid, OpHold, OpPickUpSkat, OpDiscardSkat, OpAnnounce, OpPlayCard:
			if proxy, exists := matchState.Proxies[msg.GetUserId()]; exists {
				proxy.Deliver(msg.GetOpCode(), msg.GetData())
			} else {
				logger.Warn("MatchLoop: game message from unseated user %s", msg.GetUserId())
			}
		default:
			logger.Warn("MatchLoop: unknown opcode received: %d", msg.GetOpCode())
		}
	}

	mh.autoFillBots(matchState, dispatcher, logger)
	mh.drainEvents(matchState, dispatcher, logger)

	// Transition back to the lobby when the game goroutine finishes.
	if matchState.wasRunning && !matchState.Running.Load() {
		matchState.wasRunning = false
		mh.updateLabel(matchState, dispatcher, logger)
		mh.broadcastLobbyState(matchState, dispatcher, logger)
		if matchState.humanCount() == 0 {
			logger.Info("MatchLoop: terminating match, game over and no humans left")
			return nil
		}
	}

	return matchState
}

// autoFillBots seats automated players when a single human has been waiting
// alone in the lobby for the configured delay.
func (mh *matchHandler) autoFillBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Running.Load() {
		state.lastSinglePlayerTick = 0
		return
	}
	if state.humanCount() != 1 || state.openSeatCount() == 0 {
		state.lastSinglePlayerTick = 0
		return
	}

	if state.lastSinglePlayerTick == 0 {
		state.lastSinglePlayerTick = state.Tick
		return
	}
	if state.Tick-state.lastSinglePlayerTick < int64(state.Engine.BotAutoFillDelaySec) {
		return
	}

	for i, seat := range state.Seats {
		if seat == "" {
			state.Seats[i] = botUserID(i)
			logger.Info("autoFillBots: seated bot %s (%s) in seat %d", BotDisplayName(i), state.Seats[i], i)
		}
	}
	state.lastSinglePlayerTick = 0
	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastLobbyState(state, dispatcher, logger)
}

func (mh *matchHandler) handleStartGame(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderSeat := state.seatOf(msg.GetUserId())

	if state.Running.Load() {
		logger.Warn("handleStartGame: game already running")
		return
	}
	if senderSeat != state.OwnerSeat {
		logger.Warn("handleStartGame: user %s is not the owner (seat %d, owner %d)", msg.GetUserId(), senderSeat, state.OwnerSeat)
		return
	}
	if state.openSeatCount() > 0 {
		logger.Warn("handleStartGame: %d seats still open", state.openSeatCount())
		return
	}

	ensureTable(state, logger)

	state.Running.Store(true)
	state.wasRunning = true
	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastLobbyState(state, dispatcher, logger)

	table := state.Table
	events := state.Events
	go func() {
		defer state.Running.Store(false)
		if _, err := table.PlayGame(); err != nil {
			logger.Error("game failed: %v", err)
			select {
			case events <- outEvent{op: OpGameError, payload: GameErrorEvent{Code: 500, Message: err.Error()}}:
			default:
			}
		}
	}()
}

// ensureTable builds the table on first start and rebuilds it whenever the
// seat lineup changed since, so a human who took over a bot seat between
// games is wired to a proxy instead of the stale automated player.
func ensureTable(state *MatchState, logger game.Logger) {
	if state.Table != nil && state.Seats == state.tableSeats {
		return
	}

	state.Proxies = make(map[string]*HumanProxy)
	players := [3]game.Player{}
	for i, userID := range state.Seats {
		if IsBotUserID(userID) {
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(i)))
			b := bot.NewBot(BotDisplayName(i), state.Engine, nil, rng, logger)
			players[i] = newPacedPlayer(b, rng, state.Engine.BotMinDelaySec, state.Engine.BotMaxDelaySec)
		} else {
			proxy := NewHumanProxy(userID, state.Events, logger)
			state.Proxies[userID] = proxy
			players[i] = proxy
		}
	}
	state.Table = game.NewTable(players[0], players[1], players[2], nil, logger)
	state.Table.RamschOnPassIn = state.Engine.RamschOnPassIn
	state.tableSeats = state.Seats
}

// drainEvents flushes the queued server events without blocking the loop.
func (mh *matchHandler) drainEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	for {
		select {
		case ev := <-state.Events:
			mh.dispatchEvent(state, dispatcher, logger, ev)
		default:
			return
		}
	}
}

func (mh *matchHandler) dispatchEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev outEvent) {
	data, err := json.Marshal(ev.payload)
	if err != nil {
		logger.Error("dispatchEvent: failed to marshal op %d: %v", ev.op, err)
		return
	}

	var recipients []runtime.Presence
	if len(ev.userIDs) > 0 {
		for _, userID := range ev.userIDs {
			if p, exists := state.Presences[userID]; exists {
				recipients = append(recipients, p)
			}
		}
		// Targeted events with no connected recipient must not leak to the
		// rest of the table.
		if len(recipients) == 0 {
			return
		}
	}

	if err := dispatcher.BroadcastMessage(ev.op, data, recipients, nil, true); err != nil {
		logger.Error("dispatchEvent: broadcast op %d failed: %v", ev.op, err)
	}
}

func (mh *matchHandler) broadcastLobbyState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	ev := LobbyStateEvent{
		OpenSeats: state.openSeatCount(),
		Playing:   state.Running.Load(),
	}
	if state.Table != nil {
		ev.Paused = state.Table.Paused()
	}
	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}
		info := SeatInfo{Seat: i, UserID: userID, IsBot: IsBotUserID(userID)}
		if info.IsBot {
			info.DisplayName = BotDisplayName(i)
		} else if p, exists := state.Presences[userID]; exists {
			info.DisplayName = p.GetUsername()
		}
		ev.Seats = append(ev.Seats, info)
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Error("broadcastLobbyState: %v", err)
		return
	}
	if err := dispatcher.BroadcastMessage(OpLobbyState, data, nil, nil, true); err != nil {
		logger.Error("broadcastLobbyState: broadcast failed: %v", err)
	}
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := "lobby"
	if state.Running.Load() {
		phase = "playing"
	}
	labelBytes, err := json.Marshal(&MatchLabel{Open: state.openSeatCount(), Game: "skat", Phase: phase})
	if err != nil {
		logger.Error("updateLabel: failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("updateLabel: failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: match terminated for reason %d", reason)
	if matchState, ok := state.(*MatchState); ok && matchState.Table != nil {
		// Unblock a paused game goroutine so it can run down.
		matchState.Table.Resume()
	}
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
