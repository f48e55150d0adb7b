package mahjong

import (
	"slices"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// PlayData 单个座位的牌局数据
type PlayData struct {
	seat      int32
	handTiles []Tile
	outTiles  []Tile
}

func NewPlayData(seat int32) *PlayData {
	return &PlayData{
		seat:      seat,
		handTiles: make([]Tile, 0, TileCountMaxHand),
		outTiles:  make([]Tile, 0),
	}
}

func (p *PlayData) GetSeat() int32 {
	return p.seat
}

func (p *PlayData) Discard(tile Tile) bool {
	if !slices.Contains(p.handTiles, tile) {
		return false
	}
	p.handTiles = RemoveElements(p.handTiles, tile, 1)
	logger.Log.Debugf("seat %d discard %s, hand %s", p.seat, tile.Name(), TilesName(p.handTiles))
	p.PutOutTile(tile)
	return true
}

func (p *PlayData) SetHandTiles(tiles []Tile) {
	p.handTiles = slices.Clone(tiles)
}

func (p *PlayData) PutHandTile(tile Tile) {
	p.handTiles = append(p.handTiles, tile)
	logger.Log.Debugf("seat %d draw %s, hand %s", p.seat, tile.Name(), TilesName(p.handTiles))
}

func (p *PlayData) PutOutTile(tile Tile) {
	p.outTiles = append(p.outTiles, tile)
}

func (p *PlayData) GetHandTiles() []Tile {
	return slices.Clone(p.handTiles)
}

func (p *PlayData) SortedHandTiles() []Tile {
	return SortedTiles(p.handTiles)
}

func (p *PlayData) HandCount() int {
	return len(p.handTiles)
}

func (p *PlayData) GetOutTiles() []Tile {
	return slices.Clone(p.outTiles)
}
