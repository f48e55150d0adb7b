package mahjong_test

import (
	"math/rand"
	"testing"

	"github.com/kevin-chtw/tw_onesuit/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPlay 按固定牌墙发牌：庄家 4 张，其余 3 张
func newPlay(t *testing.T, banker int32, wall []mahjong.Tile) *mahjong.Play {
	t.Helper()
	d := mahjong.NewDealer(rand.New(rand.NewSource(1)))
	d.InitializeWith(wall)
	p := mahjong.NewPlay(d, mahjong.NP4, banker)
	p.Initialize()
	p.Deal()
	return p
}

func fullWall() []mahjong.Tile {
	wall := make([]mahjong.Tile, 0, mahjong.TotalTiles)
	for v := 1; v <= mahjong.PointCount; v++ {
		wall = append(wall, repeat(v, mahjong.SameTileCount)...)
	}
	return wall
}

func TestPlayDeal(t *testing.T) {
	p := newPlay(t, 0, fullWall())

	assert.Equal(t, []int{4, 3, 3, 3}, p.HandCounts())
	assert.Equal(t, tiles(1, 1, 1, 1), p.GetPlayData(0).GetHandTiles())
	assert.Equal(t, tiles(2, 2, 2), p.GetPlayData(1).GetHandTiles())
	assert.Equal(t, tiles(2, 3, 3), p.GetPlayData(2).GetHandTiles())
	assert.Equal(t, tiles(3, 3, 4), p.GetPlayData(3).GetHandTiles())
	assert.Equal(t, mahjong.TotalTiles-13, p.GetDealer().GetRestCount())
	assert.Equal(t, mahjong.TotalTiles, p.TileCount())
	assert.Equal(t, int32(0), p.GetCurSeat())
	assert.Equal(t, mahjong.TileNull, p.GetCurTile())
}

func TestPlayBankerGetsExtraTile(t *testing.T) {
	p := newPlay(t, 2, fullWall())
	assert.Equal(t, []int{3, 3, 4, 3}, p.HandCounts())
	assert.Equal(t, 4, p.GetPlayData(2).HandCount())
	assert.Equal(t, int32(2), p.GetCurSeat())
}

func TestPlayDrawDiscard(t *testing.T) {
	p := newPlay(t, 0, fullWall())

	require.True(t, p.Discard(mahjong.NewTile(1)))
	assert.Equal(t, tiles(1), p.GetDiscards())
	assert.Equal(t, mahjong.NewTile(1), p.GetCurTile())
	assert.Equal(t, tiles(1), p.GetPlayData(0).GetOutTiles())
	assert.False(t, p.Discard(mahjong.NewTile(9)), "tile not in hand")

	p.DoSwitchSeat(mahjong.SeatNull)
	require.Equal(t, int32(1), p.GetCurSeat())
	drawn := p.Draw()
	assert.Equal(t, mahjong.NewTile(4), drawn, "the front of the wall")
	assert.Equal(t, tiles(2, 2, 2, 4), p.GetPlayData(1).GetHandTiles())
	assert.Equal(t, mahjong.TotalTiles, p.TileCount())

	winType, ok := p.CheckWin(1)
	assert.True(t, ok)
	assert.Equal(t, mahjong.WinTypePeng, winType)

	// 四张 1 打出一张后剩下刻子
	winType, ok = p.CheckWin(0)
	assert.True(t, ok)
	assert.Equal(t, mahjong.WinTypePeng, winType)
}

func TestPlaySwitchSeat(t *testing.T) {
	p := newPlay(t, 3, fullWall())
	p.DoSwitchSeat(mahjong.SeatNull)
	assert.Equal(t, int32(0), p.GetCurSeat())
	p.DoSwitchSeat(2)
	assert.Equal(t, int32(2), p.GetCurSeat())
}

func TestPlayHistory(t *testing.T) {
	p := newPlay(t, 0, fullWall())
	p.Discard(mahjong.NewTile(1))
	p.DoSwitchSeat(mahjong.SeatNull)
	p.Draw()
	p.Hu(1, mahjong.WinTypePeng)

	history := p.History()
	require.Len(t, history, 3)
	assert.Equal(t, mahjong.Action{Seat: 0, Tile: mahjong.NewTile(1), Operate: mahjong.OperateDiscard}, history[0])
	assert.Equal(t, mahjong.Action{Seat: 1, Tile: mahjong.NewTile(4), Operate: mahjong.OperateDraw}, history[1])
	assert.Equal(t, mahjong.OperateHu, history[2].Operate)
	assert.Equal(t, "hu", mahjong.GetOperateName(history[2].Operate))
}

func TestPlayEmptyWall(t *testing.T) {
	p := newPlay(t, 0, tiles(1, 2, 3, 4, 5, 6, 7, 8, 9, 1, 2, 3, 4))
	assert.Equal(t, mahjong.TileNull, p.Draw())
	assert.Empty(t, p.GetWall())
}

func TestNewProbData(t *testing.T) {
	p := newPlay(t, 0, fullWall())
	p.Discard(mahjong.NewTile(1))

	data := mahjong.NewProbData(p, 0)
	assert.Equal(t, tiles(1, 1, 1), data.Hand)
	assert.Equal(t, tiles(1), data.Discards)
	assert.Len(t, data.Wall, mahjong.TotalTiles-13)

	// 快照与局面互不影响
	data.Hand[0] = mahjong.NewTile(9)
	assert.Equal(t, tiles(1, 1, 1), p.GetPlayData(0).GetHandTiles())

	prob := mahjong.Evaluate(data)
	assert.Equal(t, mahjong.UnknownTiles(mahjong.TotalTiles-13, 1), prob.UnknownTiles)
}
