package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a
	// lobby-capable match.
	RpcQuickMatch = "quick_match"

	// MatchNameSkat is the authoritative match handler name registered with
	// Nakama.
	MatchNameSkat = "skat_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame   int64 = 1
	OpBid         int64 = 2
	OpHold        int64 = 3
	OpPickUpSkat  int64 = 4
	OpDiscardSkat int64 = 5
	OpAnnounce    int64 = 6
	OpPlayCard    int64 = 7
	OpPauseGame   int64 = 8
	OpResumeGame  int64 = 9

	// Server -> Client events
	OpLobbyState     int64 = 101
	OpCardDealt      int64 = 102 // private
	OpSkatTaken      int64 = 103 // private
	OpBidPrompt      int64 = 104 // private
	OpBidMade        int64 = 105
	OpSkatPrompt     int64 = 106 // private
	OpDiscardPrompt  int64 = 107 // private
	OpAnnouncePrompt int64 = 108 // private
	OpGameStarted    int64 = 109 // private
	OpPlayPrompt     int64 = 110 // private
	OpCardPlayed     int64 = 111
	OpTrickComplete  int64 = 112
	OpGameResult     int64 = 113
	OpGameError      int64 = 114
)
