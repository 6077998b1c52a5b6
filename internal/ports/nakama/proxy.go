package nakama

import (
	"encoding/json"
	"time"

	"skat/internal/domain"
	"skat/internal/game"
)

// answerTimeout bounds how long a game goroutine waits for a human reply
// before forfeiting the decision. The engine substitutes a legal action.
const answerTimeout = 120 * time.Second

// outEvent is a server event queued for dispatch by the match loop.
type outEvent struct {
	op      int64
	payload interface{}
	// userIDs limits delivery; empty broadcasts to the whole match.
	userIDs []string
}

// clientAnswer is a decoded client message routed to the prompted player.
type clientAnswer struct {
	op   int64
	data []byte
}

// HumanProxy bridges a connected Nakama user into the synchronous engine.
// The game goroutine calls the Player methods; prompts go out through the
// shared event queue and answers come back over the proxy's own channel,
// fed by the match loop.
type HumanProxy struct {
	userID  string
	pos     domain.Position
	events  chan<- outEvent
	answers chan clientAnswer
	log     game.Logger
}

// NewHumanProxy builds the proxy for one connected user.
func NewHumanProxy(userID string, events chan<- outEvent, log game.Logger) *HumanProxy {
	if log == nil {
		log = game.NopLogger{}
	}
	return &HumanProxy{
		userID:  userID,
		events:  events,
		answers: make(chan clientAnswer, 4),
		log:     log,
	}
}

// UserID returns the Nakama user this proxy represents.
func (p *HumanProxy) UserID() string { return p.userID }

// Deliver routes a client message to the proxy without blocking the match
// loop. Messages arriving while nothing is awaited are dropped.
func (p *HumanProxy) Deliver(op int64, data []byte) {
	select {
	case p.answers <- clientAnswer{op: op, data: data}:
	default:
		p.log.Warn("dropping message op %d from %s: no pending prompt", op, p.userID)
	}
}

func (p *HumanProxy) send(op int64, payload interface{}) {
	select {
	case p.events <- outEvent{op: op, payload: payload, userIDs: []string{p.userID}}:
	default:
		p.log.Warn("event queue full, dropping op %d for %s", op, p.userID)
	}
}

// await blocks for an answer with the expected op code. Stale answers with
// other op codes are discarded.
func (p *HumanProxy) await(op int64) ([]byte, bool) {
	deadline := time.NewTimer(answerTimeout)
	defer deadline.Stop()
	for {
		select {
		case a := <-p.answers:
			if a.op == op {
				return a.data, true
			}
			p.log.Debug("%s answered op %d while op %d was expected", p.userID, a.op, op)
		case <-deadline.C:
			p.log.Warn("%s timed out answering op %d", p.userID, op)
			return nil, false
		}
	}
}

func (p *HumanProxy) NewGame(pos domain.Position) { p.pos = pos }

func (p *HumanProxy) TakeCard(card domain.Card) {
	p.send(OpCardDealt, CardDealtEvent{Card: EncodeCard(card)})
}

func (p *HumanProxy) TakeSkat(cards []domain.Card) {
	p.send(OpSkatTaken, SkatTakenEvent{Cards: EncodeCards(cards)})
}

func (p *HumanProxy) BidMore(k *domain.Knowledge, nextBid int) int {
	p.send(OpBidPrompt, BidPromptEvent{Value: nextBid})
	data, ok := p.await(OpBid)
	if !ok {
		return -1
	}
	var req BidRequest
	if err := json.Unmarshal(data, &req); err != nil {
		p.log.Warn("%s sent bad bid payload: %v", p.userID, err)
		return -1
	}
	return req.Value
}

func (p *HumanProxy) HoldBid(k *domain.Knowledge, bid int) bool {
	p.send(OpBidPrompt, BidPromptEvent{Value: bid, Hold: true})
	data, ok := p.await(OpHold)
	if !ok {
		return false
	}
	var req HoldRequest
	if err := json.Unmarshal(data, &req); err != nil {
		p.log.Warn("%s sent bad hold payload: %v", p.userID, err)
		return false
	}
	return req.Hold
}

func (p *HumanProxy) BidByPlayer(pos domain.Position, value int) {
	p.send(OpBidMade, BidMadeEvent{Position: pos.String(), Value: value})
}

func (p *HumanProxy) PickUpSkat(k *domain.Knowledge) bool {
	p.send(OpSkatPrompt, SkatPromptEvent{})
	data, ok := p.await(OpPickUpSkat)
	if !ok {
		return false
	}
	var req PickUpSkatRequest
	if err := json.Unmarshal(data, &req); err != nil {
		p.log.Warn("%s sent bad pickup payload: %v", p.userID, err)
		return false
	}
	return req.PickUp
}

func (p *HumanProxy) DiscardSkat(k *domain.Knowledge) []domain.Card {
	p.send(OpDiscardPrompt, DiscardPromptEvent{Hand: EncodeCards(k.OwnCards)})
	data, ok := p.await(OpDiscardSkat)
	if !ok {
		return nil
	}
	var req DiscardSkatRequest
	if err := json.Unmarshal(data, &req); err != nil {
		p.log.Warn("%s sent bad discard payload: %v", p.userID, err)
		return nil
	}
	cards, err := DecodeCards(req.Cards)
	if err != nil {
		p.log.Warn("%s sent bad discard cards: %v", p.userID, err)
		return nil
	}
	return cards
}

func (p *HumanProxy) AnnounceGame(k *domain.Knowledge) domain.Announcement {
	p.send(OpAnnouncePrompt, AnnouncePromptEvent{})
	data, ok := p.await(OpAnnounce)
	if !ok {
		return domain.Announcement{GameType: domain.GameTypeNull}
	}
	var req AnnounceRequest
	if err := json.Unmarshal(data, &req); err != nil {
		p.log.Warn("%s sent bad announcement payload: %v", p.userID, err)
		return domain.Announcement{GameType: domain.GameTypeNull}
	}
	gt, err := ParseGameType(req.GameType)
	if err != nil {
		p.log.Warn("%s announced unknown game type: %v", p.userID, err)
		return domain.Announcement{GameType: domain.GameTypeNull}
	}
	return domain.Announcement{
		GameType:           gt,
		Ouvert:             req.Ouvert,
		SchneiderAnnounced: req.Schneider,
		SchwarzAnnounced:   req.Schwarz,
	}
}

func (p *HumanProxy) GameStarted(k *domain.Knowledge) {
	ev := GameStartedEvent{
		Position: k.Self.String(),
		GameType: k.Announcement.GameType.String(),
		Hand:     k.Announcement.Hand,
		Ouvert:   k.Announcement.Ouvert,
		BidValue: k.BidValue,
		OwnCards: EncodeCards(k.OwnCards),
	}
	if k.HasDeclarer {
		ev.Declarer = k.Declarer.String()
	}
	if len(k.DeclarerCards) > 0 {
		ev.DeclarerCards = EncodeCards(k.DeclarerCards)
	}
	p.send(OpGameStarted, ev)
}

func (p *HumanProxy) PlayCard(k *domain.Knowledge) domain.Card {
	prompt := PlayPromptEvent{Hand: EncodeCards(k.OwnCards)}
	if k.CurrentTrick != nil {
		for _, play := range k.CurrentTrick.Plays {
			prompt.Trick = append(prompt.Trick, EncodeCard(play.Card))
		}
	}
	p.send(OpPlayPrompt, prompt)

	data, ok := p.await(OpPlayCard)
	if !ok {
		return k.OwnCards[0]
	}
	var req PlayCardRequest
	if err := json.Unmarshal(data, &req); err != nil {
		p.log.Warn("%s sent bad play payload: %v", p.userID, err)
		return k.OwnCards[0]
	}
	card, err := DecodeCard(req.Card)
	if err != nil {
		p.log.Warn("%s played bad card code: %v", p.userID, err)
		return k.OwnCards[0]
	}
	return card
}

func (p *HumanProxy) CardPlayed(pos domain.Position, card domain.Card) {
	p.send(OpCardPlayed, CardPlayedEvent{Position: pos.String(), Card: EncodeCard(card)})
}

func (p *HumanProxy) ShowTrick(t domain.Trick) {
	ev := TrickCompleteEvent{
		Number: t.Number,
		Winner: t.Winner.String(),
		Points: t.Points(),
	}
	for _, play := range t.Plays {
		ev.Cards = append(ev.Cards, EncodeCard(play.Card))
	}
	p.send(OpTrickComplete, ev)
}

func (p *HumanProxy) SetGameResult(won bool, value int) {
	p.send(OpGameResult, GameResultEvent{Won: won, Value: value})
}

func (p *HumanProxy) FinalizeGame() {}

func (p *HumanProxy) IsHuman() bool { return true }

var _ game.Player = (*HumanProxy)(nil)
