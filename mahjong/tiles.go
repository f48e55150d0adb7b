package mahjong

import "slices"

// CountElement 统计 tiles 中与 tile 同值的数量
func CountElement(tiles []Tile, tile Tile) int {
	count := 0
	for _, t := range tiles {
		if t == tile {
			count++
		}
	}
	return count
}

// CountValue 按牌面数值统计，数值越界时返回0
func CountValue(tiles []Tile, value int) int {
	count := 0
	for _, t := range tiles {
		if t.Value() == value {
			count++
		}
	}
	return count
}

func ContainsValue(tiles []Tile, value int) bool {
	return slices.ContainsFunc(tiles, func(t Tile) bool {
		return t.Value() == value
	})
}

// CountTiles 统计每种牌的数量
func CountTiles(tiles []Tile) map[Tile]int {
	counts := make(map[Tile]int, len(tiles))
	for _, t := range tiles {
		counts[t]++
	}
	return counts
}

// RemoveElements 从 tiles 中移除最多 count 张 tile，返回新切片
func RemoveElements(tiles []Tile, tile Tile, count int) []Tile {
	res := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		if t == tile && count > 0 {
			count--
			continue
		}
		res = append(res, t)
	}
	return res
}

// SortedTiles 返回排好序的副本
func SortedTiles(tiles []Tile) []Tile {
	res := slices.Clone(tiles)
	slices.Sort(res)
	return res
}
