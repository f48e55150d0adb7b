package mahjong_test

import (
	"testing"

	"github.com/kevin-chtw/tw_onesuit/mahjong"
	"github.com/stretchr/testify/assert"
)

func tiles(values ...int) []mahjong.Tile {
	res := make([]mahjong.Tile, len(values))
	for i, v := range values {
		res[i] = mahjong.NewTile(v)
	}
	return res
}

func repeat(value, count int) []mahjong.Tile {
	return mahjong.MakeTiles(mahjong.NewTile(value), count)
}

func TestIsWinningHand(t *testing.T) {
	testCases := []struct {
		name string
		hand []mahjong.Tile
		want mahjong.WinType
	}{
		{"triplet", tiles(5, 5, 5), mahjong.WinTypePeng},
		{"pair is not a set", tiles(5, 5, 6), mahjong.WinTypeNone},
		{"run", tiles(3, 4, 5), mahjong.WinTypeChi},
		{"run unordered", tiles(5, 3, 4), mahjong.WinTypeChi},
		{"broken run", tiles(3, 4, 7), mahjong.WinTypeNone},
		{"low edge", tiles(1, 2, 3), mahjong.WinTypeChi},
		{"high edge", tiles(9, 7, 8), mahjong.WinTypeChi},
		{"no wrap around", tiles(8, 9, 1), mahjong.WinTypeNone},
		{"four of a kind is not a triplet", tiles(5, 5, 5, 5), mahjong.WinTypeNone},
		{"triplet with a spare", tiles(5, 5, 5, 9), mahjong.WinTypePeng},
		{"peng before chi", tiles(2, 2, 2, 3, 4), mahjong.WinTypePeng},
		{"run inside four tiles", tiles(1, 6, 8, 7), mahjong.WinTypeChi},
		{"empty", nil, mahjong.WinTypeNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mahjong.WinningType(tc.hand))
			assert.Equal(t, tc.want != mahjong.WinTypeNone, mahjong.IsWinningHand(tc.hand))
		})
	}
}

func TestHasTriplet(t *testing.T) {
	assert.True(t, mahjong.HasTriplet(tiles(5, 5, 5), mahjong.NewTile(5)))
	assert.False(t, mahjong.HasTriplet(tiles(5, 5, 5), mahjong.NewTile(4)))
	assert.False(t, mahjong.HasTriplet(tiles(5, 5), mahjong.NewTile(5)))
	assert.False(t, mahjong.HasTriplet(tiles(5, 5, 5, 5), mahjong.NewTile(5)))
}

func TestHasSequence(t *testing.T) {
	hand := tiles(3, 4, 5)
	assert.True(t, mahjong.HasSequence(hand, mahjong.NewTile(3)))
	assert.True(t, mahjong.HasSequence(hand, mahjong.NewTile(4)))
	assert.True(t, mahjong.HasSequence(hand, mahjong.NewTile(5)))
	// 手牌外的牌也能与手牌组成顺子
	assert.True(t, mahjong.HasSequence(tiles(4, 5), mahjong.NewTile(6)))
	assert.True(t, mahjong.HasSequence(tiles(4, 6), mahjong.NewTile(5)))
	assert.False(t, mahjong.HasSequence(tiles(4, 7), mahjong.NewTile(5)))
	assert.False(t, mahjong.HasSequence(tiles(8, 9), mahjong.NewTile(1)))
}

func TestCheckWinCustomCheckers(t *testing.T) {
	hand := tiles(2, 2, 2, 3, 4)
	assert.Equal(t, mahjong.WinTypeChi, mahjong.CheckWin(hand, &mahjong.ChiChecker{}))
	assert.Equal(t, mahjong.WinTypeChi, mahjong.CheckWin(hand, &mahjong.ChiChecker{}, &mahjong.PengChecker{}))
	assert.Equal(t, mahjong.WinTypeNone, mahjong.CheckWin(hand))
}
