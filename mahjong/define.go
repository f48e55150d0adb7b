package mahjong

const (
	SeatNull int32 = -1
)

const (
	NP4 = 4
)

const (
	TileCountInitBanker = 4 // 庄家起手
	TileCountInitNormal = 3 // 闲家起手
	TileCountMaxHand    = 4 // 摸牌后的手牌上限
)

type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万
	ColorEnd
	ColorBegin = ColorCharacter
)

var PointCountByColor = [ColorEnd]int{9}
var SameTileCountByColor = [ColorEnd]int{4}

const (
	PointCount    = 9
	SameTileCount = 4
	TotalTiles    = PointCount * SameTileCount // 36
)

// 操作类型
const (
	OperateDraw = 1 << iota
	OperateDiscard
	OperateHu
)

var operateNames = map[int]string{
	OperateDraw:    "draw",
	OperateDiscard: "discard",
	OperateHu:      "hu",
}

// WinType 和牌方式
type WinType int

const (
	WinTypeNone WinType = iota
	WinTypePeng         // 碰（刻子）
	WinTypeChi          // 吃（顺子）
)

func (w WinType) String() string {
	switch w {
	case WinTypePeng:
		return "Peng"
	case WinTypeChi:
		return "Chi"
	default:
		return "None"
	}
}

func GetNextSeat(seat, step, seatCount int32) int32 {
	return (seat + step) % seatCount
}

func GetOperateName(operate int) string {
	if name, ok := operateNames[operate]; ok {
		return name
	}
	return "unknown"
}

type Action struct {
	Seat    int32
	Tile    Tile
	Operate int
}
