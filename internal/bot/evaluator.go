package bot

import (
	"skat/internal/domain"
	"skat/internal/rules"
)

// Evaluator scores a candidate card against the viewer's restricted
// knowledge, returning a win likelihood in [0, 1]. It is a black box to the
// engine; a statistical model can be plugged in behind this interface.
type Evaluator interface {
	Score(k *domain.Knowledge, candidate domain.Card) float64
}

const (
	scoreBase         = 0.5
	scoreWinningTrick = 0.25
	scoreTrickPoints  = 0.15 // scaled by trick value
	scoreCheapCard    = 0.1  // scaled by how few points the card gives away
)

// HeuristicEvaluator is the shipped fallback evaluator: it favours taking
// fat tricks for the declarer's side, ducking for null declarers and saving
// points otherwise.
type HeuristicEvaluator struct{}

func (e *HeuristicEvaluator) Score(k *domain.Knowledge, candidate domain.Card) float64 {
	if !k.Announced {
		return scoreBase
	}
	r, err := rules.ForGameType(k.Announcement.GameType)
	if err != nil {
		return scoreBase
	}

	isDeclarer := k.HasDeclarer && k.Self == k.Declarer
	nullGame := k.Announcement.GameType == domain.GameTypeNull

	var trick domain.Trick
	if k.CurrentTrick != nil {
		trick = k.CurrentTrick.Copy()
	}
	trick.AddPlay(k.Self, candidate)
	winsSoFar := r.TrickWinner(trick) == k.Self
	closing := len(trick.Plays) == 3

	trickPoints := float64(trick.Points()) / 42.0 // two aces and a ten is a fat trick
	if trickPoints > 1 {
		trickPoints = 1
	}
	cheapness := 1.0 - float64(candidate.Points())/11.0

	score := scoreBase

	if nullGame && isDeclarer {
		// Any trick loses the game; only the closing card is certain.
		if winsSoFar && closing {
			return 0.02
		}
		if winsSoFar {
			score -= scoreWinningTrick
		} else {
			score += scoreWinningTrick
		}
		// Prefer the low end of the null order.
		return clampScore(score + scoreCheapCard*(1.0-float64(candidate.NullOrder())/7.0))
	}

	if k.Announcement.GameType == domain.GameTypeRamsch {
		// Fewest points wins: avoid taking and throw points into others'
		// tricks.
		if winsSoFar {
			score -= scoreWinningTrick + scoreTrickPoints*trickPoints
		} else {
			score += scoreWinningTrick - scoreCheapCard*cheapness
		}
		return clampScore(score)
	}

	if isDeclarer {
		if winsSoFar {
			score += scoreWinningTrick + scoreTrickPoints*trickPoints
		} else {
			score += scoreCheapCard * cheapness
		}
	} else {
		// Defender: beat the declarer when the trick is worth it, otherwise
		// duck cheaply.
		if winsSoFar && closing {
			score += scoreWinningTrick + scoreTrickPoints*trickPoints
		} else if winsSoFar {
			score += scoreTrickPoints * trickPoints
		} else {
			score += scoreCheapCard * cheapness
		}
	}

	return clampScore(score)
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
