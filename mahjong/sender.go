package mahjong

import (
	"fmt"
	"io"
	"strings"

	"github.com/kevin-chtw/tw_onesuit/utils"
)

// TurnReport 每回合输出的局面
type TurnReport struct {
	Turn      int
	WallCount int
	Hands     [][]Tile // 各家手牌，已排序
	Discards  []Tile
	CurTile   Tile // 上一张打出的牌
	Seat      int32
	Prob      Probability
}

func NewTurnReport(play *Play, turn int, prob Probability) *TurnReport {
	hands := make([][]Tile, play.GetPlayerCount())
	for i := range hands {
		hands[i] = play.GetPlayData(int32(i)).SortedHandTiles()
	}
	return &TurnReport{
		Turn:      turn,
		WallCount: play.GetDealer().GetRestCount(),
		Hands:     hands,
		Discards:  play.GetDiscards(),
		CurTile:   play.GetCurTile(),
		Seat:      play.GetCurSeat(),
		Prob:      prob,
	}
}

// Sender 输出牌局过程
type Sender struct {
	w      io.Writer
	format string
}

func NewSender(w io.Writer, format string) *Sender {
	return &Sender{w: w, format: format}
}

func (s *Sender) SendTurn(r *TurnReport) error {
	if s.format == FormatJSON {
		return s.sendJSON(turnFields(r))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n--- Turn %d ---\n", r.Turn)
	fmt.Fprintf(&b, "Tiles left in wall: %d\n", r.WallCount)
	for i, hand := range r.Hands {
		fmt.Fprintf(&b, "Player %d: %s\n", i, TilesString(hand))
	}
	fmt.Fprintf(&b, "Discard Pile: %s\n", TilesString(r.Discards))
	fmt.Fprintf(&b, "Current Discard: %s\n", r.CurTile)
	fmt.Fprintf(&b, "Player %d's turn\n", r.Seat)
	fmt.Fprintf(&b, "Peng Probability for Player %d | Actual: %s, Estimated: %s\n",
		r.Seat, Percent(r.Prob.PengActual), Percent(r.Prob.PengEstimated))
	fmt.Fprintf(&b, "Chi Probability for Player %d | Actual: %s, Estimated: %s\n",
		r.Seat, Percent(r.Prob.ChiActual), Percent(r.Prob.ChiEstimated))
	_, err := io.WriteString(s.w, b.String())
	return err
}

func (s *Sender) SendResult(result *Result) error {
	if s.format == FormatJSON {
		fields := map[string]any{
			"result": result.String(),
			"turns":  result.Turns,
		}
		if result.HasWinner() {
			fields["winner"] = result.Winner
			fields["win_type"] = result.WinType.String()
			fields["hand"] = tileValues(result.Hand)
		}
		return s.sendJSON(fields)
	}
	_, err := fmt.Fprintln(s.w, result.String())
	return err
}

func (s *Sender) sendJSON(fields map[string]any) error {
	msg, err := utils.ToStruct(fields)
	if err != nil {
		return err
	}
	data, err := utils.MarshalJSON(msg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.w, string(data))
	return err
}

func turnFields(r *TurnReport) map[string]any {
	hands := make([]any, len(r.Hands))
	for i, hand := range r.Hands {
		hands[i] = tileValues(hand)
	}
	fields := map[string]any{
		"turn":       r.Turn,
		"wall_count": r.WallCount,
		"hands":      hands,
		"discards":   tileValues(r.Discards),
		"seat":       r.Seat,
		"probability": map[string]any{
			"peng_actual":    r.Prob.PengActual,
			"peng_estimated": r.Prob.PengEstimated,
			"chi_actual":     r.Prob.ChiActual,
			"chi_estimated":  r.Prob.ChiEstimated,
			"unknown_tiles":  r.Prob.UnknownTiles,
		},
	}
	if r.CurTile.IsValid() {
		fields["current_discard"] = r.CurTile.Value()
	}
	return fields
}

// tileValues 转为 structpb 支持的列表
func tileValues(tiles []Tile) []any {
	values := make([]any, len(tiles))
	for i, t := range tiles {
		values[i] = t.Value()
	}
	return values
}

// Percent 百分比，保留两位小数
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}
