package aggregator

import (
	"fmt"
	"math"
	"sort"

	"github.com/pable/go-war-stats/internal/model"
)

// Rows computes one DisplayRow per player known to stats, sorted by name in byte order.
func Rows(stats *model.Stats) ([]model.DisplayRow, error) {
	if stats == nil {
		return nil, fmt.Errorf("nil Stats")
	}

	names := stats.Players()
	sort.Strings(names)

	rows := make([]model.DisplayRow, 0, len(names))
	for _, name := range names {
		rows = append(rows, buildRow(stats, name))
	}
	return rows, nil
}

func buildRow(stats *model.Stats, name string) model.DisplayRow {
	// Absent entries read as zero tallies; lookups here must not create entries.
	var atk, def model.Tally
	if t, ok := stats.Attack[name]; ok {
		atk = *t
	}
	if t, ok := stats.Defend[name]; ok {
		def = *t
	}

	totalKilled := atk.Killed + def.Killed
	totalLost := atk.Lost + def.Lost

	return model.DisplayRow{
		Name:         name,
		Gained:       stats.TroopsGained[name],
		TotalKilled:  totalKilled,
		TotalLost:    totalLost,
		KD:           KD(totalKilled, totalLost),
		AttackKilled: atk.Killed,
		AttackLost:   atk.Lost,
		AttackKD:     KD(atk.Killed, atk.Lost),
		DefendKilled: def.Killed,
		DefendLost:   def.Lost,
		DefendKD:     KD(def.Killed, def.Lost),
	}
}

// KD returns killed/lost rounded to two decimals. A scope with no kills is 0
// even when it also has no losses; kills without losses give model.Infinite.
func KD(killed, lost int) model.Ratio {
	if killed == 0 {
		return 0
	}
	if lost == 0 {
		return model.Infinite
	}
	return model.Ratio(round2(float64(killed) / float64(lost)))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Totals sums every row into a single "all players" row named label.
func Totals(rows []model.DisplayRow, label string) model.DisplayRow {
	out := model.DisplayRow{Name: label}
	for _, r := range rows {
		out.Gained += r.Gained
		out.TotalKilled += r.TotalKilled
		out.TotalLost += r.TotalLost
		out.AttackKilled += r.AttackKilled
		out.AttackLost += r.AttackLost
		out.DefendKilled += r.DefendKilled
		out.DefendLost += r.DefendLost
	}
	out.KD = KD(out.TotalKilled, out.TotalLost)
	out.AttackKD = KD(out.AttackKilled, out.AttackLost)
	out.DefendKD = KD(out.DefendKilled, out.DefendLost)
	return out
}
