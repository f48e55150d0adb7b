package mahjong

import (
	"math/rand"
	"slices"
)

// Dealer 发牌器，持有牌墙
type Dealer struct {
	rng      *rand.Rand
	tileWall []Tile
}

// NewDealer 创建新的发牌器，rng 决定洗牌顺序
func NewDealer(rng *rand.Rand) *Dealer {
	return &Dealer{
		rng:      rng,
		tileWall: make([]Tile, 0),
	}
}

func (d *Dealer) Initialize(tiles map[Tile]int) {
	// 预计算总牌数并一次性分配
	total := 0
	for _, count := range tiles {
		total += count
	}
	d.tileWall = make([]Tile, total)

	// map 遍历顺序不固定，先排序保证同一种子得到同一牌墙
	keys := make([]Tile, 0, len(tiles))
	for tile := range tiles {
		keys = append(keys, tile)
	}
	slices.Sort(keys)

	// 填充并同时随机化牌墙
	i := 0
	for _, tile := range keys {
		for range tiles[tile] {
			pos := d.rng.Intn(i + 1)
			if pos != i {
				d.tileWall[i] = d.tileWall[pos]
			}
			d.tileWall[pos] = tile
			i++
		}
	}
}

// InitializeWith 使用给定顺序的牌墙
func (d *Dealer) InitializeWith(tiles []Tile) {
	d.tileWall = slices.Clone(tiles)
}

// Shuffle 洗牌
func (d *Dealer) Shuffle(tiles []Tile) {
	d.rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
}

// DrawTile 从牌墙头部摸牌
func (d *Dealer) DrawTile() Tile {
	if len(d.tileWall) == 0 {
		return TileNull
	}
	tile := d.tileWall[0]
	d.tileWall = d.tileWall[1:]
	return tile
}

func (d *Dealer) Deal(count int) []Tile {
	count = min(count, len(d.tileWall))
	tiles := make([]Tile, count)
	copy(tiles, d.tileWall[:count])
	d.tileWall = d.tileWall[count:]
	return tiles
}

// GetRestCount 获取剩余牌数
func (d *Dealer) GetRestCount() int {
	return len(d.tileWall)
}

// GetTiles 牌墙副本
func (d *Dealer) GetTiles() []Tile {
	return slices.Clone(d.tileWall)
}

func (d *Dealer) HasTile(tile Tile) bool {
	return slices.Contains(d.tileWall, tile)
}

func (d *Dealer) Count(tile Tile) int {
	return CountElement(d.tileWall, tile)
}
