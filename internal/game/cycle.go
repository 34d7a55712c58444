package game

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
)

// ErrInsufficientPlayers is returned when a round is computed with
// fewer than two active members.
var ErrInsufficientPlayers = errors.New("at least two active players are required")

// Pair is one assassin→target edge of a round's cycle.
type Pair struct {
	Assassin string
	Target   string
}

// CycleSeed derives a stable shuffle seed from a game and round so
// recomputing the same round yields the same cycle.
func CycleSeed(gameID uint, round int) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d/%d", gameID, round)
	return int64(h.Sum64())
}

// BuildCycle shuffles the ordered member ids with the given seed and
// links member[i] to member[(i+1) mod n]. The result is a single
// Hamiltonian cycle: every member appears exactly once as assassin and
// once as target, and nobody targets themselves.
func BuildCycle(memberIDs []string, seed int64) ([]Pair, error) {
	if len(memberIDs) < 2 {
		return nil, ErrInsufficientPlayers
	}
	ids := make([]string, len(memberIDs))
	copy(ids, memberIDs)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	pairs := make([]Pair, len(ids))
	for i := range ids {
		pairs[i] = Pair{
			Assassin: ids[i],
			Target:   ids[(i+1)%len(ids)],
		}
	}
	return pairs, nil
}
