package nakama

import (
	"encoding/json"
	"testing"

	"skat/internal/domain"
)

func TestHumanProxyBidFlow(t *testing.T) {
	events := make(chan outEvent, 8)
	p := NewHumanProxy("user-1", events, nil)

	go func() {
		ev := <-events
		if ev.op != OpBidPrompt {
			t.Errorf("prompt op = %d, want %d", ev.op, OpBidPrompt)
		}
		data, _ := json.Marshal(BidRequest{Value: 18})
		p.Deliver(OpBid, data)
	}()

	if got := p.BidMore(&domain.Knowledge{}, 18); got != 18 {
		t.Errorf("BidMore() = %d, want 18", got)
	}
}

func TestHumanProxyDiscardsStaleAnswers(t *testing.T) {
	events := make(chan outEvent, 8)
	p := NewHumanProxy("user-1", events, nil)

	// A leftover hold answer precedes the expected play answer.
	stale, _ := json.Marshal(HoldRequest{Hold: true})
	p.Deliver(OpHold, stale)
	answer, _ := json.Marshal(PlayCardRequest{Card: "CJ"})
	p.Deliver(OpPlayCard, answer)

	k := &domain.Knowledge{
		Self:     domain.Forehand,
		OwnCards: []domain.Card{{Suit: domain.Clubs, Rank: domain.Jack}},
	}
	got := p.PlayCard(k)
	if got != (domain.Card{Suit: domain.Clubs, Rank: domain.Jack}) {
		t.Errorf("PlayCard() = %s, want CJ", got)
	}
}

func TestHumanProxyBadPayloadPasses(t *testing.T) {
	events := make(chan outEvent, 8)
	p := NewHumanProxy("user-1", events, nil)

	p.Deliver(OpBid, []byte("not json"))
	if got := p.BidMore(&domain.Knowledge{}, 18); got != -1 {
		t.Errorf("BidMore() = %d, want a pass for a bad payload", got)
	}
}

func TestHumanProxyNotificationsAreTargeted(t *testing.T) {
	events := make(chan outEvent, 8)
	p := NewHumanProxy("user-1", events, nil)

	p.TakeCard(domain.Card{Suit: domain.Hearts, Rank: domain.Ace})

	ev := <-events
	if ev.op != OpCardDealt {
		t.Fatalf("op = %d, want %d", ev.op, OpCardDealt)
	}
	if len(ev.userIDs) != 1 || ev.userIDs[0] != "user-1" {
		t.Errorf("recipients = %v, want only user-1", ev.userIDs)
	}
}
