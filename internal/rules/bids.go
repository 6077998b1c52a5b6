package rules

// BidValues is the standard Skat bid ladder. The state machine only enforces
// strict monotonicity; the ladder is for callers stepping through bids.
var BidValues = []int{
	18, 20, 22, 23, 24, 27, 30, 33, 35, 36, 40, 44, 45, 46, 48, 50, 54, 55,
	59, 60, 63, 66, 70, 72, 77, 80, 81, 84, 88, 90, 96, 99, 100, 108, 110,
	117, 120, 121, 126, 130, 132, 135, 140, 143, 144, 150, 153, 154, 156,
	160, 162, 165, 168, 170, 176, 180, 187, 192, 198, 204, 216, 240, 264,
}

// NextBidValue returns the lowest ladder value above current, or -1 when the
// ladder is exhausted.
func NextBidValue(current int) int {
	for _, v := range BidValues {
		if v > current {
			return v
		}
	}
	return -1
}
