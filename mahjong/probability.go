package mahjong

// ProbData 计算概率所需的局面快照，只读
type ProbData struct {
	Hand     []Tile
	Wall     []Tile
	Discards []Tile
}

func NewProbData(play *Play, seat int32) *ProbData {
	return &ProbData{
		Hand:     play.GetPlayData(seat).GetHandTiles(),
		Wall:     play.GetWall(),
		Discards: play.GetDiscards(),
	}
}

// Probability 碰/吃的成牌概率。Actual 使用真实牌墙，仅用于分析，玩家不可见
type Probability struct {
	PengActual    float64
	PengEstimated float64
	ChiActual     float64
	ChiEstimated  float64
	UnknownTiles  int
}

func Evaluate(data *ProbData) Probability {
	prob := Probability{UnknownTiles: UnknownTiles(len(data.Wall), len(data.Discards))}
	prob.PengActual, prob.PengEstimated = PengProbability(data.Hand, data.Wall, data.Discards)
	prob.ChiActual, prob.ChiEstimated = ChiProbability(data.Hand, data.Wall, data.Discards)
	return prob
}

// UnknownTiles 不在牌墙也不在弃牌堆的牌数，即所有玩家手牌（包括自己）
func UnknownTiles(wallSize, discardSize int) int {
	return max(TotalTiles-wallSize-discardSize, 0)
}

// PengProbability 对每个对子计算摸到第三张的概率，实际值和估计值分别取最大
func PengProbability(hand, wall, discards []Tile) (actual, estimated float64) {
	wallSize := len(wall)
	unknown := UnknownTiles(wallSize, len(discards))

	seen := make(map[int]struct{}, len(hand))
	for _, tile := range hand {
		v := tile.Value()
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		if CountValue(hand, v) != 2 {
			continue
		}

		actual = max(actual, drawRatio(CountValue(wall, v), wallSize))
		estimated = max(estimated, PengEstimate(wallSize, unknown, len(hand)))
	}
	return
}

// PengEstimate 剩余两张同值牌分布在牌墙和其他玩家手牌中，按超几何分布求摸到的期望概率
func PengEstimate(wallSize, unknown, handSize int) float64 {
	if unknown < 2 || wallSize <= 0 {
		return 0
	}
	p := InWallProbabilities(wallSize, max(unknown-handSize, 0))
	return p[1]*(1/float64(wallSize)) + p[2]*(2/float64(wallSize))
}

// InWallProbabilities 两张牌在 wallSize+hidden 个位置中随机分布时，
// 恰有 k(0,1,2) 张落在牌墙中的概率
func InWallProbabilities(wallSize, hidden int) [3]float64 {
	var p [3]float64
	total := comb(wallSize+hidden, 2)
	if total == 0 {
		return p
	}
	for k := range p {
		p[k] = float64(comb(wallSize, k)*comb(hidden, 2-k)) / float64(total)
	}
	return p
}

// ChiProbability 对手牌中每张牌（重复的牌逐张计算）的相邻牌计算概率，分别取最大。
// 估计值 = 未见张数 / 未知牌数，未知牌数包含自己的手牌，与碰的模型不一致，保留原算法
func ChiProbability(hand, wall, discards []Tile) (actual, estimated float64) {
	wallSize := len(wall)
	unknown := UnknownTiles(wallSize, len(discards))

	for _, tile := range hand {
		for _, need := range chiNeeded(tile.Value()) {
			actual = max(actual, drawRatio(CountValue(wall, need), wallSize))
			if unknown <= 0 {
				continue
			}
			missing := SameTileCount - CountValue(hand, need) - CountValue(discards, need)
			estimated = max(estimated, min(float64(missing)/float64(unknown), 1))
		}
	}
	return
}

// chiNeeded 能与 v 组成顺子的牌值
func chiNeeded(v int) []int {
	needed := make([]int, 0, 4)
	for _, n := range []int{v - 1, v + 1, v - 2, v + 2} {
		if n >= 1 && n <= PointCount {
			needed = append(needed, n)
		}
	}
	return needed
}

func drawRatio(count, wallSize int) float64 {
	if wallSize <= 0 {
		return 0
	}
	return float64(count) / float64(wallSize)
}

func comb(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	res := 1
	for i := range k {
		res = res * (n - i) / (i + 1)
	}
	return res
}
