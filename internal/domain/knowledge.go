package domain

// Knowledge is the restricted, read-only projection of a GameState handed to
// one player. It is constructed fresh for every notification and never
// aliases the authoritative state, so players cannot mutate shared data.
// It only carries information the viewer is legitimately allowed to see.
type Knowledge struct {
	Self     Position
	OwnCards []Card

	Declarer    Position
	HasDeclarer bool

	Announcement Announcement
	Announced    bool

	Bids     map[Position]int
	Passed   map[Position]bool
	BidValue int

	CurrentTrick *Trick
	Tricks       []Trick
	PlayedCards  []Card

	// Skat is populated only for the declarer after pickup.
	Skat []Card
	// DeclarerCards is populated for everyone after an ouvert announcement.
	DeclarerCards []Card

	Points map[Position]int
}

// KnowledgeFor builds the projection for one seat.
func (g *GameState) KnowledgeFor(viewer Position) *Knowledge {
	k := &Knowledge{
		Self:        viewer,
		OwnCards:    CopyCards(g.Hands[viewer]),
		Declarer:    g.Declarer,
		HasDeclarer: g.HasDeclarer,
		BidValue:    g.BidValue,
		Bids:        make(map[Position]int, len(g.Bids)),
		Passed:      make(map[Position]bool, len(g.Passed)),
		PlayedCards: g.PlayedCards(),
		Points:      make(map[Position]int, len(g.Points)),
	}
	for pos, bid := range g.Bids {
		k.Bids[pos] = bid
	}
	for pos, passed := range g.Passed {
		k.Passed[pos] = passed
	}
	for pos, points := range g.Points {
		k.Points[pos] = points
	}

	if g.AnnouncementSet {
		k.Announcement = g.Announcement
		k.Announced = true
	}

	if ct := g.CurrentTrick(); ct != nil {
		cp := ct.Copy()
		k.CurrentTrick = &cp
		for _, t := range g.Tricks[:len(g.Tricks)-1] {
			k.Tricks = append(k.Tricks, t.Copy())
		}
	}

	if g.SkatKnown && g.HasDeclarer && viewer == g.Declarer {
		k.Skat = CopyCards(g.Skat)
	}
	if g.Announcement.Ouvert && g.HasDeclarer {
		k.DeclarerCards = CopyCards(g.Hands[g.Declarer])
	}

	return k
}
