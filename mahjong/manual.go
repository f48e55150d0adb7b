package mahjong

import (
	"errors"
	"fmt"
	"maps"

	"github.com/spf13/viper"
)

var (
	ErrTileOverflow = errors.New("tile overflow")
	ErrInvalidTile  = errors.New("invalid tile")
)

// Manual 配牌，从 yaml 读取各家起手牌
//
//	enable: true
//	cards:
//	  - "1万,1万,5万,7万"
//	  - "2万,3万"
type Manual struct {
	vp *viper.Viper
}

// NewManual 读取配牌文件
func NewManual(file string) (*Manual, error) {
	m := &Manual{
		vp: viper.New(),
	}
	m.vp.SetConfigType("yaml")
	m.vp.SetConfigFile(file)
	if err := m.vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read initcard %s: %w", file, err)
	}
	return m, nil
}

func (m *Manual) Enabled() bool {
	if m == nil {
		return false
	}
	return m.vp.GetBool("enable")
}

// Load 生成完整牌墙：各家配牌在前，不足部分和剩余牌由 dealer 洗牌补齐
func (m *Manual) Load(d *Dealer, tiles map[Tile]int, handCounts []int) ([]Tile, error) {
	cards := m.vp.GetStringSlice("cards")
	if len(cards) > len(handCounts) {
		return nil, fmt.Errorf("initcard has %d hands, only %d players", len(cards), len(handCounts))
	}
	groups := make([][]Tile, len(handCounts))
	for i := range cards {
		groups[i] = namesToTiles(cards[i])
		if len(groups[i]) > handCounts[i] {
			return nil, fmt.Errorf("initcard hand %d has %d tiles, want at most %d", i, len(groups[i]), handCounts[i])
		}
	}

	tmp := make(map[Tile]int)
	maps.Copy(tmp, tiles)
	for i, g := range groups {
		for _, t := range g {
			if !t.IsValid() {
				return nil, fmt.Errorf("initcard hand %d: %w", i, ErrInvalidTile)
			}
			tmp[t]--
			if tmp[t] < 0 {
				return nil, fmt.Errorf("tile %s: %w", t.Name(), ErrTileOverflow)
			}
		}
	}

	var rests []Tile
	for _, t := range SortedTiles(keysOf(tmp)) {
		if count := tmp[t]; count > 0 {
			rests = append(rests, MakeTiles(t, count)...)
		}
	}

	d.Shuffle(rests)
	var out []Tile
	for i, g := range groups {
		out = append(out, g...)
		more := handCounts[i] - len(g)
		out = append(out, rests[:more]...)
		rests = rests[more:]
	}
	out = append(out, rests...)
	return out, nil
}

func keysOf(m map[Tile]int) []Tile {
	keys := make([]Tile, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
