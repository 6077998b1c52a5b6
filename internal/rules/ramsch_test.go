package rules

import (
	"testing"

	"skat/internal/domain"
)

func ramschState(points map[domain.Position]int, perspective domain.Position) *domain.GameState {
	g := domain.NewGameState()
	g.SetAnnouncement(domain.Announcement{GameType: domain.GameTypeRamsch})
	g.SetDeclarer(perspective)
	for pos, p := range points {
		g.AddPoints(pos, p)
	}
	return g
}

func TestRamschGameWon(t *testing.T) {
	r, err := ForGameType(domain.GameTypeRamsch)
	if err != nil {
		t.Fatal(err)
	}

	points := map[domain.Position]int{
		domain.Forehand:   60,
		domain.Middlehand: 40,
		domain.Rearhand:   20,
	}

	tests := []struct {
		perspective domain.Position
		want        bool
	}{
		{domain.Forehand, false},
		{domain.Middlehand, true},
		{domain.Rearhand, true},
	}
	for _, tt := range tests {
		g := ramschState(points, tt.perspective)
		if got := r.GameWon(g); got != tt.want {
			t.Errorf("GameWon(%s) = %v, want %v", tt.perspective, got, tt.want)
		}
	}
}

func TestRamschTiedLosers(t *testing.T) {
	r, err := ForGameType(domain.GameTypeRamsch)
	if err != nil {
		t.Fatal(err)
	}

	points := map[domain.Position]int{
		domain.Forehand:   50,
		domain.Middlehand: 50,
		domain.Rearhand:   20,
	}

	// Both seats tied at the top lose.
	for _, pos := range []domain.Position{domain.Forehand, domain.Middlehand} {
		if r.GameWon(ramschState(points, pos)) {
			t.Errorf("tied top scorer %s must lose", pos)
		}
	}
	if !r.GameWon(ramschState(points, domain.Rearhand)) {
		t.Error("low scorer must win against a tie")
	}
}

func TestRamschGameResult(t *testing.T) {
	r, err := ForGameType(domain.GameTypeRamsch)
	if err != nil {
		t.Fatal(err)
	}

	points := map[domain.Position]int{
		domain.Forehand:   70,
		domain.Middlehand: 30,
		domain.Rearhand:   20,
	}

	g := ramschState(points, domain.Forehand)
	if got := r.GameResult(g); got != -70 {
		t.Errorf("GameResult() = %d, want -70", got)
	}

	g.Jungfrau = true
	if got := r.GameResult(g); got != -140 {
		t.Errorf("GameResult() with jungfrau = %d, want -140", got)
	}
}

func TestRamschDurchmarsch(t *testing.T) {
	r, err := ForGameType(domain.GameTypeRamsch)
	if err != nil {
		t.Fatal(err)
	}

	g := ramschState(map[domain.Position]int{domain.Forehand: 120}, domain.Forehand)
	g.Durchmarsch = true
	for i := 0; i < 10; i++ {
		tr := domain.NewTrick(i, domain.Forehand)
		tr.Winner = domain.Forehand
		tr.Resolved = true
		g.AddTrick(tr)
	}

	if !r.GameWon(g) {
		t.Error("a durchmarsch wins outright")
	}
	if got := r.GameResult(g); got != 120 {
		t.Errorf("GameResult() = %d, want 120", got)
	}
}
