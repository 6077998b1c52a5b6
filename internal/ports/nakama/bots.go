package nakama

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"skat/internal/domain"
	"skat/internal/game"
)

const botUserIDPrefix = "bot:"

// Seat display names for automated players.
var botNames = []string{"Ernst", "Hannes", "Greta"}

func botUserID(seat int) string {
	return fmt.Sprintf("%s%d", botUserIDPrefix, seat)
}

// IsBotUserID reports whether the user id belongs to an automated seat.
func IsBotUserID(userID string) bool {
	return strings.HasPrefix(userID, botUserIDPrefix)
}

// BotDisplayName returns the display name for a bot seat id.
func BotDisplayName(seat int) string {
	return botNames[seat%len(botNames)]
}

// pacedPlayer wraps an automated player with a human-feeling delay before
// every visible decision, so bot turns do not resolve instantly.
type pacedPlayer struct {
	game.Player
	rng      *rand.Rand
	minDelay time.Duration
	maxDelay time.Duration
}

func newPacedPlayer(inner game.Player, rng *rand.Rand, minSec, maxSec int) *pacedPlayer {
	if maxSec < minSec {
		maxSec = minSec
	}
	return &pacedPlayer{
		Player:   inner,
		rng:      rng,
		minDelay: time.Duration(minSec) * time.Second,
		maxDelay: time.Duration(maxSec) * time.Second,
	}
}

func (p *pacedPlayer) pause() {
	span := p.maxDelay - p.minDelay
	d := p.minDelay
	if span > 0 {
		d += time.Duration(p.rng.Int63n(int64(span) + 1))
	}
	time.Sleep(d)
}

func (p *pacedPlayer) BidMore(k *domain.Knowledge, nextBid int) int {
	p.pause()
	return p.Player.BidMore(k, nextBid)
}

func (p *pacedPlayer) HoldBid(k *domain.Knowledge, bid int) bool {
	p.pause()
	return p.Player.HoldBid(k, bid)
}

func (p *pacedPlayer) PickUpSkat(k *domain.Knowledge) bool {
	p.pause()
	return p.Player.PickUpSkat(k)
}

func (p *pacedPlayer) DiscardSkat(k *domain.Knowledge) []domain.Card {
	p.pause()
	return p.Player.DiscardSkat(k)
}

func (p *pacedPlayer) AnnounceGame(k *domain.Knowledge) domain.Announcement {
	p.pause()
	return p.Player.AnnounceGame(k)
}

func (p *pacedPlayer) PlayCard(k *domain.Knowledge) domain.Card {
	p.pause()
	return p.Player.PlayCard(k)
}

var _ game.Player = (*pacedPlayer)(nil)
