package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pable/go-war-stats/internal/model"
)

var (
	lineSplit  = regexp.MustCompile(`\r?\n`)
	killingRe  = regexp.MustCompile(`killing\s(\d{1,2})`)
	losingRe   = regexp.MustCompile(`losing\s(\d{1,2})`)
	playerRe   = regexp.MustCompile(`\(([a-zA-Z0-9_-]+)\)`)
	leadingInt = regexp.MustCompile(`^\d+`)
)

const (
	attackedToken = "attacked"
	receivedToken = "received"
	troopToken    = "troop"
)

// classifier turns one line into an event. ok is false when the line is not its shape.
type classifier func(line string) (model.Event, bool)

// classifiers run in order; the first match wins.
var classifiers = []classifier{
	classifyCombat,
	classifyTroopGain,
}

// Parse splits text into lines and aggregates every recognized line into a fresh Stats.
func Parse(text string) *model.Stats {
	stats := model.NewStats()

	for _, line := range lineSplit.Split(text, -1) {
		stats.Lines.Total++
		if line == "" {
			stats.Lines.Blank++
			continue
		}

		ev := Classify(line)
		switch ev.Kind {
		case model.KindCombat:
			stats.Lines.Combat++
		case model.KindTroopGain:
			stats.Lines.TroopGain++
			if !ev.TroopGain.Valid {
				stats.Lines.BadTroopCount++
				log.Warn().Str("line", line).Str("player", ev.TroopGain.Player).
					Msg("troop line has no readable count")
			}
		default:
			stats.Lines.Unrecognized++
			if strings.Contains(line, attackedToken) {
				log.Debug().Str("line", line).Msg("skipping combat line without killing/losing counts")
			}
		}
		stats.Apply(ev)
	}

	log.Debug().
		Int("lines", stats.Lines.Total).
		Int("combat", stats.Lines.Combat).
		Int("troop_gain", stats.Lines.TroopGain).
		Int("unrecognized", stats.Lines.Unrecognized).
		Msg("parsed log")
	return stats
}

// Classify returns the event for a single line. Lines matching no shape come
// back as KindUnrecognized.
func Classify(line string) model.Event {
	for _, c := range classifiers {
		if ev, ok := c(line); ok {
			return ev
		}
	}
	return model.Event{Kind: model.KindUnrecognized}
}

// classifyCombat handles "<...(Attacker)> attacked <...(Defender)> killing K losing L".
func classifyCombat(line string) (model.Event, bool) {
	idx := strings.Index(line, attackedToken)
	if idx < 0 {
		return model.Event{}, false
	}
	km := killingRe.FindStringSubmatch(line)
	lm := losingRe.FindStringSubmatch(line)
	if km == nil || lm == nil {
		return model.Event{}, false
	}
	// \d{1,2} always fits in an int.
	killed, _ := strconv.Atoi(km[1])
	lost, _ := strconv.Atoi(lm[1])

	left := line[:idx]
	right := line[idx+len(attackedToken):]
	// Only the text up to a second "attacked" belongs to the defender side.
	if j := strings.Index(right, attackedToken); j >= 0 {
		right = right[:j]
	}

	return model.Event{
		Kind: model.KindCombat,
		Combat: model.CombatEvent{
			Attacker: lastPlayer(left, model.UnknownAttacker),
			Defender: lastPlayer(right, model.UnknownDefender),
			Killed:   killed,
			Lost:     lost,
		},
	}, true
}

// lastPlayer returns the final parenthesized token in segment, or fallback when there is none.
// Earlier tokens are territory names.
func lastPlayer(segment, fallback string) string {
	matches := playerRe.FindAllStringSubmatch(segment, -1)
	if len(matches) == 0 {
		log.Debug().Str("segment", segment).Str("placeholder", fallback).Msg("no player token")
		return fallback
	}
	return matches[len(matches)-1][1]
}

// classifyTroopGain handles "<Name> received <N> troop(s)". The token layout is
// positional and not validated.
func classifyTroopGain(line string) (model.Event, bool) {
	if !strings.Contains(line, receivedToken) || !strings.Contains(line, troopToken) {
		return model.Event{}, false
	}
	fields := strings.Fields(line)
	ev := model.Event{Kind: model.KindTroopGain}
	if len(fields) > 0 {
		ev.TroopGain.Player = fields[0]
	}
	if len(fields) > 2 {
		ev.TroopGain.Troops, ev.TroopGain.Valid = parseLeadingInt(fields[2])
	}
	return ev, true
}

// parseLeadingInt reads the integer prefix of s, so "3," yields 3.
func parseLeadingInt(s string) (int, bool) {
	m := leadingInt.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}
