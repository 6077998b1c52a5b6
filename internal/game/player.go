package game

import "skat/internal/domain"

// Player is the capability consumed by the state machine. Implementations
// may be human frontends, automated players or remote proxies; the engine
// depends only on this interface.
//
// Decision methods receive a fresh Knowledge projection restricted to what
// that seat is allowed to see. Notification methods carry defensive copies.
type Player interface {
	// NewGame announces a new game and the player's seat.
	NewGame(pos domain.Position)
	// TakeCard hands the player one dealt card.
	TakeCard(card domain.Card)
	// TakeSkat hands the declarer the two picked-up skat cards.
	TakeSkat(cards []domain.Card)

	// BidMore asks the player to bid the given value. A negative return
	// declines and passes permanently.
	BidMore(k *domain.Knowledge, nextBid int) int
	// HoldBid asks the player to hold against the given bid.
	HoldBid(k *domain.Knowledge, bid int) bool
	// BidByPlayer notifies about another seat's bid (value) or pass
	// (value < 0).
	BidByPlayer(pos domain.Position, value int)

	// PickUpSkat asks the declarer whether to pick up the skat. False means
	// a hand game.
	PickUpSkat(k *domain.Knowledge) bool
	// DiscardSkat asks the declarer for exactly two cards out of its hand.
	DiscardSkat(k *domain.Knowledge) []domain.Card
	// AnnounceGame asks the declarer to fix the game announcement.
	AnnounceGame(k *domain.Knowledge) domain.Announcement
	// GameStarted notifies that the announcement is fixed and play begins.
	GameStarted(k *domain.Knowledge)

	// PlayCard asks for the next card.
	PlayCard(k *domain.Knowledge) domain.Card
	// CardPlayed notifies about any seat's accepted play, including the
	// player's own.
	CardPlayed(pos domain.Position, card domain.Card)
	// ShowTrick notifies about a completed trick.
	ShowTrick(t domain.Trick)

	// SetGameResult reports the final outcome, exactly once per game.
	SetGameResult(won bool, value int)
	// FinalizeGame closes the game on the player's side.
	FinalizeGame()

	// IsHuman distinguishes players whose illegal plays are re-prompted from
	// automated ones, whose illegal plays are accepted with a logged
	// violation to guarantee liveness.
	IsHuman() bool
}
