package mahjong

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// Result 牌局结果
type Result struct {
	Winner  int32
	WinType WinType
	Hand    []Tile // 赢家手牌，已排序
	Turns   int
}

func (r *Result) HasWinner() bool {
	return r.Winner != SeatNull
}

func (r *Result) String() string {
	if !r.HasWinner() {
		return "Game ended without a winner (wall exhausted)."
	}
	return fmt.Sprintf("Player %d won with %s: %s", r.Winner, r.WinType, TilesString(r.Hand))
}

// Game 牌局驱动：每回合先输出局面和概率，再摸牌、出牌、判断和牌
type Game struct {
	rule      *Rule
	play      *Play
	sender    *Sender
	discarder Discarder
	turn      int
}

func NewGame(rule *Rule, sender *Sender) (*Game, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	dealer := NewDealer(newRand(rule.ShuffleSeed))
	g := &Game{
		rule:      rule,
		play:      NewPlay(dealer, NP4, rule.Banker),
		sender:    sender,
		discarder: NewRandomDiscarder(newRand(rule.DiscardSeed)),
		turn:      1,
	}
	g.play.Initialize()

	if err := g.initWall(dealer); err != nil {
		return nil, err
	}
	g.play.Deal()
	return g, nil
}

func (g *Game) initWall(dealer *Dealer) error {
	if g.rule.InitCard == "" {
		dealer.Initialize(AllTiles())
		return nil
	}

	manual, err := NewManual(g.rule.InitCard)
	if err != nil {
		return err
	}
	if !manual.Enabled() {
		logger.Log.Infof("initcard %s disabled, shuffle normally", g.rule.InitCard)
		dealer.Initialize(AllTiles())
		return nil
	}
	wall, err := manual.Load(dealer, AllTiles(), g.play.HandCounts())
	if err != nil {
		return err
	}
	dealer.InitializeWith(wall)
	return nil
}

// SetDiscarder 替换出牌策略
func (g *Game) SetDiscarder(d Discarder) {
	g.discarder = d
}

func (g *Game) GetPlay() *Play {
	return g.play
}

// Run 执行到有人和牌或牌墙摸完
func (g *Game) Run() *Result {
	p := g.play
	for p.GetDealer().GetRestCount() > 0 {
		g.checkConservation()
		g.sendTurn()

		seat := p.GetCurSeat()
		playData := p.GetPlayData(seat)
		if playData.HandCount() < TileCountMaxHand {
			p.Draw()
			if winType, ok := p.CheckWin(seat); ok {
				return g.finish(seat, winType)
			}
		}

		if playData.HandCount() > 0 {
			tile := g.discarder.Choose(playData.GetHandTiles())
			p.Discard(tile)
			if winType, ok := p.CheckWin(seat); ok {
				return g.finish(seat, winType)
			}
		}

		p.DoSwitchSeat(SeatNull)
		g.turn++
	}
	return g.finish(SeatNull, WinTypeNone)
}

func (g *Game) finish(seat int32, winType WinType) *Result {
	result := &Result{Winner: seat, WinType: winType, Turns: g.turn}
	if seat != SeatNull {
		g.play.Hu(seat, winType)
		result.Hand = g.play.GetPlayData(seat).SortedHandTiles()
	} else {
		logger.Log.Infof("wall exhausted after %d turns", g.turn)
	}
	if g.sender != nil {
		if err := g.sender.SendResult(result); err != nil {
			logger.Log.Errorf("send result failed: %v", err)
		}
	}
	return result
}

func (g *Game) sendTurn() {
	if g.sender == nil {
		return
	}
	seat := g.play.GetCurSeat()
	report := NewTurnReport(g.play, g.turn, Evaluate(NewProbData(g.play, seat)))
	if err := g.sender.SendTurn(report); err != nil {
		logger.Log.Errorf("send turn %d failed: %v", g.turn, err)
	}
}

func (g *Game) checkConservation() {
	if count := g.play.TileCount(); count != TotalTiles {
		logger.Log.Errorf("turn %d: tile count %d, want %d", g.turn, count, TotalTiles)
	}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
