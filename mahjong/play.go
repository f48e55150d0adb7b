package mahjong

import (
	"slices"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// Play 牌局过程：发牌、摸牌、出牌、轮转座位
type Play struct {
	dealer      *Dealer
	playerCount int32
	curSeat     int32
	curTile     Tile
	banker      int32
	discards    []Tile
	history     []Action
	playData    []*PlayData
	checkers    []SetChecker
}

func NewPlay(dealer *Dealer, playerCount, banker int32) *Play {
	return &Play{
		dealer:      dealer,
		playerCount: playerCount,
		curSeat:     SeatNull,
		curTile:     TileNull,
		banker:      banker,
		discards:    make([]Tile, 0),
		history:     make([]Action, 0),
		playData:    make([]*PlayData, playerCount),
		checkers:    make([]SetChecker, 0),
	}
}

func (p *Play) RegisterChecker(cks ...SetChecker) {
	p.checkers = append(p.checkers, cks...)
}

func (p *Play) Initialize() {
	p.curSeat = p.banker
	p.curTile = TileNull
	p.discards = make([]Tile, 0)
	p.history = make([]Action, 0)
	for i := range p.playerCount {
		p.playData[i] = NewPlayData(i)
	}
	if len(p.checkers) == 0 {
		p.RegisterChecker(DefaultCheckers...)
	}
}

// HandCounts 各座位起手张数，庄家多一张
func (p *Play) HandCounts() []int {
	counts := make([]int, p.playerCount)
	for i := range counts {
		counts[i] = TileCountInitNormal
		if int32(i) == p.banker {
			counts[i] = TileCountInitBanker
		}
	}
	return counts
}

func (p *Play) Deal() {
	for i, count := range p.HandCounts() {
		p.playData[i].SetHandTiles(p.dealer.Deal(count))
	}
}

func (p *Play) GetDealer() *Dealer {
	return p.dealer
}

func (p *Play) GetPlayData(seat int32) *PlayData {
	return p.playData[seat]
}

// Draw 当前座位摸牌，牌墙为空返回 TileNull
func (p *Play) Draw() Tile {
	tile := p.dealer.DrawTile()
	if tile != TileNull {
		p.playData[p.curSeat].PutHandTile(tile)
		p.addHistory(p.curSeat, tile, OperateDraw)
	}
	return tile
}

// Discard 当前座位打出 tile，同时进入公共弃牌堆
func (p *Play) Discard(tile Tile) bool {
	if !p.playData[p.curSeat].Discard(tile) {
		logger.Log.Errorf("seat %d cannot discard %s", p.curSeat, tile.Name())
		return false
	}
	p.curTile = tile
	p.discards = append(p.discards, tile)
	p.addHistory(p.curSeat, tile, OperateDiscard)
	return true
}

// CheckWin 检查座位手牌是否成牌
func (p *Play) CheckWin(seat int32) (WinType, bool) {
	winType := CheckWin(p.playData[seat].handTiles, p.checkers...)
	return winType, winType != WinTypeNone
}

// Hu 记录和牌
func (p *Play) Hu(seat int32, winType WinType) {
	logger.Log.Infof("seat %d hu with %s: %s", seat, winType, TilesName(p.playData[seat].SortedHandTiles()))
	p.addHistory(seat, p.curTile, OperateHu)
}

func (p *Play) DoSwitchSeat(seat int32) {
	if seat == SeatNull {
		p.curSeat = GetNextSeat(p.curSeat, 1, p.playerCount)
	} else {
		p.curSeat = seat
	}
}

func (p *Play) GetCurSeat() int32 {
	return p.curSeat
}

func (p *Play) GetCurTile() Tile {
	return p.curTile
}

func (p *Play) GetBanker() int32 {
	return p.banker
}

func (p *Play) GetPlayerCount() int32 {
	return p.playerCount
}

// GetWall 牌墙副本，仅供分析使用
func (p *Play) GetWall() []Tile {
	return p.dealer.GetTiles()
}

func (p *Play) GetDiscards() []Tile {
	return slices.Clone(p.discards)
}

// TileCount 手牌、牌墙、弃牌堆的总张数，应始终等于 TotalTiles
func (p *Play) TileCount() int {
	total := p.dealer.GetRestCount() + len(p.discards)
	for _, pd := range p.playData {
		total += pd.HandCount()
	}
	return total
}

func (p *Play) History() []Action {
	return slices.Clone(p.history)
}

func (p *Play) addHistory(seat int32, tile Tile, operate int) {
	p.history = append(p.history, Action{
		Seat:    seat,
		Tile:    tile,
		Operate: operate,
	})
}
