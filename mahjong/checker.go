package mahjong

// SetChecker 检查某张牌能否与手牌组成一组
type SetChecker interface {
	Check(hand []Tile, tile Tile) bool
	Type() WinType
}

type PengChecker struct{} // 刻子检查器
type ChiChecker struct{}  // 顺子检查器

// DefaultCheckers 碰优先于吃
var DefaultCheckers = []SetChecker{&PengChecker{}, &ChiChecker{}}

func (c *PengChecker) Check(hand []Tile, tile Tile) bool {
	return HasTriplet(hand, tile)
}

func (c *PengChecker) Type() WinType {
	return WinTypePeng
}

func (c *ChiChecker) Check(hand []Tile, tile Tile) bool {
	return HasSequence(hand, tile)
}

func (c *ChiChecker) Type() WinType {
	return WinTypeChi
}

// HasTriplet 手牌中恰好有3张同值牌。4张不算
func HasTriplet(hand []Tile, tile Tile) bool {
	return CountValue(hand, tile.Value()) == 3
}

// HasSequence 手牌中存在包含 tile 的顺子
func HasSequence(hand []Tile, tile Tile) bool {
	v := tile.Value()
	has := func(value int) bool { return ContainsValue(hand, value) }
	return (has(v-2) && has(v-1)) ||
		(has(v-1) && has(v+1)) ||
		(has(v+1) && has(v+2))
}

// IsWinningHand 手牌中至少有一组刻子或顺子
func IsWinningHand(hand []Tile) bool {
	return CheckWin(hand, DefaultCheckers...) != WinTypeNone
}

// WinningType 和牌方式，碰优先
func WinningType(hand []Tile) WinType {
	return CheckWin(hand, DefaultCheckers...)
}

// CheckWin 按检查器顺序返回第一个成立的和牌方式
func CheckWin(hand []Tile, checkers ...SetChecker) WinType {
	for _, ck := range checkers {
		for _, tile := range hand {
			if ck.Check(hand, tile) {
				return ck.Type()
			}
		}
	}
	return WinTypeNone
}
