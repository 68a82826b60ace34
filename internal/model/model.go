package model

import (
	"encoding/json"
	"math"
	"strconv"
)

// Placeholder names used when a combat line side carries no parenthesized player token.
const (
	UnknownAttacker = "UnknownA"
	UnknownDefender = "UnknownB"
)

// Tally is a (killed, lost) counter pair scoped to one role.
type Tally struct {
	Killed int `json:"killed"`
	Lost   int `json:"lost"`
}

// Add increments both counters.
func (t *Tally) Add(killed, lost int) {
	t.Killed += killed
	t.Lost += lost
}

// ---- Events emitted by the line classifiers ----

// EventKind tags which shape a log line was classified as.
type EventKind int

const (
	KindUnrecognized EventKind = iota
	KindCombat
	KindTroopGain
)

func (k EventKind) String() string {
	switch k {
	case KindCombat:
		return "combat"
	case KindTroopGain:
		return "troop-gain"
	default:
		return "unrecognized"
	}
}

// CombatEvent is one "A attacked B killing K losing L" line.
type CombatEvent struct {
	Attacker string
	Defender string
	Killed   int // troops the attacker killed
	Lost     int // troops the attacker lost
}

// TroopGainEvent is one "<Name> received <N> troops" line.
// Valid is false when the count token could not be read as an integer.
type TroopGainEvent struct {
	Player string
	Troops int
	Valid  bool
}

// Event is the tagged result of classifying a single line. Only the field
// matching Kind is meaningful.
type Event struct {
	Kind      EventKind
	Combat    CombatEvent
	TroopGain TroopGainEvent
}

// LineCounts records how the lines of one parse were classified.
type LineCounts struct {
	Total         int `json:"total"`
	Blank         int `json:"blank"`
	Combat        int `json:"combat"`
	TroopGain     int `json:"troop_gain"`
	Unrecognized  int `json:"unrecognized"`
	BadTroopCount int `json:"bad_troop_count"`
}

// ---- Aggregate ----

// Stats is the per-player aggregate built by one parse. The maps are owned by
// the Stats value; callers outside the parser should treat them as read-only.
type Stats struct {
	Attack       map[string]*Tally
	Defend       map[string]*Tally
	TroopsGained map[string]int
	Lines        LineCounts
}

// NewStats returns an empty aggregate.
func NewStats() *Stats {
	return &Stats{
		Attack:       make(map[string]*Tally),
		Defend:       make(map[string]*Tally),
		TroopsGained: make(map[string]int),
	}
}

// AttackTally returns the attack tally for name, creating a zero entry on miss.
func (s *Stats) AttackTally(name string) *Tally {
	t, ok := s.Attack[name]
	if !ok {
		t = &Tally{}
		s.Attack[name] = t
	}
	return t
}

// DefendTally returns the defend tally for name, creating a zero entry on miss.
func (s *Stats) DefendTally(name string) *Tally {
	t, ok := s.Defend[name]
	if !ok {
		t = &Tally{}
		s.Defend[name] = t
	}
	return t
}

// Apply folds one classified event into the aggregate.
func (s *Stats) Apply(ev Event) {
	switch ev.Kind {
	case KindCombat:
		c := ev.Combat
		// Both participants appear in both maps, even for the role they did not play.
		atk := s.AttackTally(c.Attacker)
		s.DefendTally(c.Attacker)
		s.AttackTally(c.Defender)
		def := s.DefendTally(c.Defender)

		atk.Add(c.Killed, c.Lost)
		def.Add(c.Lost, c.Killed)
	case KindTroopGain:
		g := ev.TroopGain
		cur := s.TroopsGained[g.Player]
		if g.Valid {
			cur += g.Troops
		}
		s.TroopsGained[g.Player] = cur
	}
}

// Players returns every name known to any of the three maps, unsorted.
func (s *Stats) Players() []string {
	seen := make(map[string]struct{}, len(s.Attack)+len(s.TroopsGained))
	var names []string
	add := func(n string) {
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	for n := range s.Attack {
		add(n)
	}
	for n := range s.Defend {
		add(n)
	}
	for n := range s.TroopsGained {
		add(n)
	}
	return names
}

// ---- Derived stats ----

// Ratio is a kill/death ratio. +Inf marks a scope with kills and no losses.
type Ratio float64

// Infinite is the "undefeated" sentinel.
var Infinite = Ratio(math.Inf(1))

// IsInfinite reports whether r is the infinite sentinel.
func (r Ratio) IsInfinite() bool {
	return math.IsInf(float64(r), 1)
}

// String renders 0 as "0", the sentinel as "Infinity" and anything else with two decimals.
func (r Ratio) String() string {
	switch {
	case r.IsInfinite():
		return "Infinity"
	case r == 0:
		return "0"
	default:
		return strconv.FormatFloat(float64(r), 'f', 2, 64)
	}
}

// MarshalJSON encodes the sentinel as the string "Infinity"; JSON has no infinity literal.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if r.IsInfinite() {
		return []byte(`"Infinity"`), nil
	}
	return json.Marshal(float64(r))
}

// UnmarshalJSON accepts both numbers and the "Infinity" string.
func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == `"Infinity"` {
		*r = Infinite
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = Ratio(f)
	return nil
}

// DisplayRow is one formatted report row. Field order matches Columns in the report package.
type DisplayRow struct {
	Name         string `json:"name"`
	Gained       int    `json:"troops_gained"`
	TotalKilled  int    `json:"killed"`
	TotalLost    int    `json:"lost"`
	KD           Ratio  `json:"kd"`
	AttackKilled int    `json:"killed_attacking"`
	AttackLost   int    `json:"lost_attacking"`
	AttackKD     Ratio  `json:"attack_kd"`
	DefendKilled int    `json:"killed_defending"`
	DefendLost   int    `json:"lost_defending"`
	DefendKD     Ratio  `json:"defense_kd"`
}

// Values returns the row's cells in column order, rendered as text.
func (r DisplayRow) Values() []string {
	return []string{
		r.Name,
		strconv.Itoa(r.Gained),
		strconv.Itoa(r.TotalKilled),
		strconv.Itoa(r.TotalLost),
		r.KD.String(),
		strconv.Itoa(r.AttackKilled),
		strconv.Itoa(r.AttackLost),
		r.AttackKD.String(),
		strconv.Itoa(r.DefendKilled),
		strconv.Itoa(r.DefendLost),
		r.DefendKD.String(),
	}
}

// Column is a table header label plus its hover/help text.
type Column struct {
	Label   string `json:"label"`
	Tooltip string `json:"tooltip"`
}
