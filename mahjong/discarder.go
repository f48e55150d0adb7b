package mahjong

import "math/rand"

// Discarder 出牌策略
type Discarder interface {
	Choose(hand []Tile) Tile
}

// RandomDiscarder 随机出一张手牌
type RandomDiscarder struct {
	rng *rand.Rand
}

func NewRandomDiscarder(rng *rand.Rand) *RandomDiscarder {
	return &RandomDiscarder{rng: rng}
}

func (r *RandomDiscarder) Choose(hand []Tile) Tile {
	if len(hand) == 0 {
		return TileNull
	}
	return hand[r.rng.Intn(len(hand))]
}
