package mahjong

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	TileNull Tile = -1
	TileInf  Tile = MakeTile(ColorEnd, 0) // 无效牌
)

// 静态表：最后一个 rune -> 颜色
var lastRuneToColor = map[rune]EColor{
	'万': ColorCharacter,
}

type Tile int32

func MakeTile(color EColor, point int) Tile {
	return Tile((int(color)<<8 | (point << 4) | 1))
}

// NewTile 按牌面数值(1-9)创建单一花色的牌
func NewTile(value int) Tile {
	return MakeTile(ColorCharacter, value-1)
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

// Suit 花色编号，从1开始
func (t Tile) Suit() int {
	return int(t.Color()) + 1
}

// Value 牌面数值 1-9
func (t Tile) Value() int {
	return t.Point() + 1
}

func (t Tile) IsValid() bool {
	return t > 0 && t < TileInf && t.Color() < ColorEnd && t.Point() < PointCountByColor[t.Color()]
}

func (t Tile) Name() string {
	c, p := t.Info()
	switch c {
	case ColorCharacter:
		return strconv.Itoa(p+1) + "万"
	default:
		return ""
	}
}

// String 以 (花色, 数值) 的形式输出
func (t Tile) String() string {
	if !t.IsValid() {
		return "None"
	}
	return fmt.Sprintf("(%d, %d)", t.Suit(), t.Value())
}

func (t Tile) ToInt32() int32 {
	return int32(t)
}

func TilesName(tiles []Tile) string {
	var tileNames []string
	for _, tile := range tiles {
		tileNames = append(tileNames, tile.Name())
	}
	return strings.Join(tileNames, ", ")
}

// TilesString 以列表形式输出，如 [(1, 2), (1, 5)]
func TilesString(tiles []Tile) string {
	parts := make([]string, len(tiles))
	for i, tile := range tiles {
		parts[i] = tile.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func TilesInt32(tiles []Tile) []int32 {
	res := make([]int32, len(tiles))
	for i, t := range tiles {
		res[i] = int32(t)
	}
	return res
}

// AllTiles 全部牌及其数量
func AllTiles() map[Tile]int {
	tiles := make(map[Tile]int, PointCount)
	for color := ColorBegin; color < ColorEnd; color++ {
		for point := range PointCountByColor[color] {
			tiles[MakeTile(color, point)] = SameTileCountByColor[color]
		}
	}
	return tiles
}

func namesToTiles(names string) []Tile {
	parts := strings.Split(names, ",")
	res := make([]Tile, 0, len(parts))
	for _, name := range parts {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		res = append(res, nameToTile(name))
	}
	return res
}

// nameToTile 支持 "5万" 和 "5" 两种写法
func nameToTile(name string) Tile {
	if name == "" {
		return TileNull
	}

	prefix := name
	color := ColorCharacter
	if r, size := utf8.DecodeLastRuneInString(name); r >= utf8.RuneSelf {
		c, ok := lastRuneToColor[r]
		if !ok {
			return TileNull
		}
		color = c
		prefix = name[:len(name)-size]
	}

	num, err := strconv.Atoi(prefix)
	if err != nil || num < 1 || num > PointCountByColor[color] {
		return TileNull
	}
	return MakeTile(color, num-1)
}

func MakeTiles(t Tile, count int) []Tile {
	if count <= 0 {
		return []Tile{}
	}
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}
