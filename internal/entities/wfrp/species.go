package wfrp

// Species holds the static baseline for one playable species: starting
// characteristic values plus the derived-stat lookups that are pure
// per-species constants.
type Species struct {
	ID string

	// Base maps every characteristic to its species starting value
	Base map[Characteristic]int32

	// Movement is the species movement rate
	Movement int32

	// Fate and Resilience are the maxima of the two luck pools
	Fate       int32
	Resilience int32

	// IntrinsicTalents are granted at rank 1 for zero XP
	IntrinsicTalents []string
}
