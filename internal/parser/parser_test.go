package parser

import (
	"testing"

	"github.com/pable/go-war-stats/internal/model"
)

// tally is a shorthand for comparing map entries.
func tally(t *testing.T, m map[string]*model.Tally, name string) model.Tally {
	t.Helper()
	got, ok := m[name]
	if !ok {
		t.Fatalf("no entry for %q", name)
	}
	return *got
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		line string
		want model.Event
	}{
		{
			name: "combat with territories",
			line: "Alaska (Alice) attacked Kamchatka (Bob) killing 5 losing 2",
			want: model.Event{Kind: model.KindCombat, Combat: model.CombatEvent{
				Attacker: "Alice", Defender: "Bob", Killed: 5, Lost: 2,
			}},
		},
		{
			name: "last parenthesized token on each side wins",
			line: "North (Africa) (Zed_1) attacked East (Asia) (Ann-2) killing 10 losing 0",
			want: model.Event{Kind: model.KindCombat, Combat: model.CombatEvent{
				Attacker: "Zed_1", Defender: "Ann-2", Killed: 10, Lost: 0,
			}},
		},
		{
			name: "no left token falls back to UnknownA",
			line: "attacked (B) killing 1 losing 1",
			want: model.Event{Kind: model.KindCombat, Combat: model.CombatEvent{
				Attacker: model.UnknownAttacker, Defender: "B", Killed: 1, Lost: 1,
			}},
		},
		{
			name: "no right token falls back to UnknownB",
			line: "Peru (Cara) attacked killing 3 losing 4",
			want: model.Event{Kind: model.KindCombat, Combat: model.CombatEvent{
				Attacker: "Cara", Defender: model.UnknownDefender, Killed: 3, Lost: 4,
			}},
		},
		{
			name: "tokens with spaces are not player names",
			line: "(New Guinea) attacked (Siam) killing 2 losing 1",
			want: model.Event{Kind: model.KindCombat, Combat: model.CombatEvent{
				Attacker: model.UnknownAttacker, Defender: "Siam", Killed: 2, Lost: 1,
			}},
		},
		{
			name: "three digit counts keep the first two digits",
			line: "X (A) attacked Y (B) killing 123 losing 45",
			want: model.Event{Kind: model.KindCombat, Combat: model.CombatEvent{
				Attacker: "A", Defender: "B", Killed: 12, Lost: 45,
			}},
		},
		{
			name: "defender side ends at a second attacked",
			line: "X (A) attacked Y (B) attacked Z (C) killing 1 losing 2",
			want: model.Event{Kind: model.KindCombat, Combat: model.CombatEvent{
				Attacker: "A", Defender: "B", Killed: 1, Lost: 2,
			}},
		},
		{
			name: "combat without losing count is unrecognized",
			line: "X (A) attacked Y (B) killing 4",
			want: model.Event{Kind: model.KindUnrecognized},
		},
		{
			name: "troops plural",
			line: "Bob received 3 troops",
			want: model.Event{Kind: model.KindTroopGain, TroopGain: model.TroopGainEvent{
				Player: "Bob", Troops: 3, Valid: true,
			}},
		},
		{
			name: "troop singular with surrounding whitespace",
			line: "   Bob   received 1 troop  ",
			want: model.Event{Kind: model.KindTroopGain, TroopGain: model.TroopGainEvent{
				Player: "Bob", Troops: 1, Valid: true,
			}},
		},
		{
			name: "trailing punctuation after count",
			line: "Bob received 7, troops for Asia",
			want: model.Event{Kind: model.KindTroopGain, TroopGain: model.TroopGainEvent{
				Player: "Bob", Troops: 7, Valid: true,
			}},
		},
		{
			name: "rigid grammar misparses has received",
			line: "Bob has received 4 troops",
			want: model.Event{Kind: model.KindTroopGain, TroopGain: model.TroopGainEvent{
				Player: "Bob", Valid: false,
			}},
		},
		{
			name: "combat shape wins over troop shape",
			line: "X (A) attacked Y (B) killing 1 losing 1 and received troops",
			want: model.Event{Kind: model.KindCombat, Combat: model.CombatEvent{
				Attacker: "A", Defender: "B", Killed: 1, Lost: 1,
			}},
		},
		{
			name: "unrelated chatter",
			line: "Carol ended her turn",
			want: model.Event{Kind: model.KindUnrecognized},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.line)
			if got != tc.want {
				t.Errorf("Classify(%q)\n got  %+v\n want %+v", tc.line, got, tc.want)
			}
		})
	}
}

// TestParse_Conservation: one combat line changes exactly four counters.
func TestParse_Conservation(t *testing.T) {
	s := Parse("Alaska (A) attacked Ural (B) killing 7 losing 3")

	if got := tally(t, s.Attack, "A"); got != (model.Tally{Killed: 7, Lost: 3}) {
		t.Errorf("attack[A] = %+v, want {7 3}", got)
	}
	if got := tally(t, s.Defend, "B"); got != (model.Tally{Killed: 3, Lost: 7}) {
		t.Errorf("defend[B] = %+v, want {3 7}", got)
	}
	// Both participants get zero entries for the role they did not play.
	if got := tally(t, s.Defend, "A"); got != (model.Tally{}) {
		t.Errorf("defend[A] = %+v, want zero", got)
	}
	if got := tally(t, s.Attack, "B"); got != (model.Tally{}) {
		t.Errorf("attack[B] = %+v, want zero", got)
	}
	if len(s.Attack) != 2 || len(s.Defend) != 2 || len(s.TroopsGained) != 0 {
		t.Errorf("unexpected map sizes: attack=%d defend=%d troops=%d",
			len(s.Attack), len(s.Defend), len(s.TroopsGained))
	}
}

func TestParse_TroopAccumulation(t *testing.T) {
	s := Parse("Bob received 2 troops\nBob received 3 troop")
	if got := s.TroopsGained["Bob"]; got != 5 {
		t.Errorf("troopsGained[Bob] = %d, want 5", got)
	}
	if s.Lines.TroopGain != 2 {
		t.Errorf("troop lines = %d, want 2", s.Lines.TroopGain)
	}
}

func TestParse_FallbackNaming(t *testing.T) {
	s := Parse("attacked (B) killing 1 losing 1")
	if got := tally(t, s.Attack, model.UnknownAttacker); got.Killed != 1 {
		t.Errorf("attack[UnknownA].killed = %d, want 1", got.Killed)
	}
	if got := tally(t, s.Defend, "B"); got.Lost != 1 {
		t.Errorf("defend[B].lost = %d, want 1", got.Lost)
	}
}

// TestParse_PlaceholderMerging: unresolved players on different lines share one bucket.
func TestParse_PlaceholderMerging(t *testing.T) {
	s := Parse("attacked (B) killing 1 losing 2\nattacked (C) killing 3 losing 4")
	if got := tally(t, s.Attack, model.UnknownAttacker); got != (model.Tally{Killed: 4, Lost: 6}) {
		t.Errorf("attack[UnknownA] = %+v, want {4 6}", got)
	}
}

func TestParse_LineEndingsAndBlanks(t *testing.T) {
	text := "X (A) attacked Y (B) killing 1 losing 1\r\n\r\n\nA received 2 troops\r\n"
	s := Parse(text)

	if got := tally(t, s.Attack, "A"); got != (model.Tally{Killed: 1, Lost: 1}) {
		t.Errorf("attack[A] = %+v", got)
	}
	if got := s.TroopsGained["A"]; got != 2 {
		t.Errorf("troopsGained[A] = %d, want 2", got)
	}
	// "\r\n" is one separator: names must not carry a stray "\r".
	if _, ok := s.TroopsGained["A\r"]; ok {
		t.Error("CR leaked into a player name")
	}
	want := model.LineCounts{Total: 5, Blank: 3, Combat: 1, TroopGain: 1}
	if s.Lines != want {
		t.Errorf("line counts = %+v, want %+v", s.Lines, want)
	}
}

func TestParse_MalformedLinesAreSkipped(t *testing.T) {
	s := Parse("X (A) attacked Y (B) killing many losing 2\nsomething else entirely")
	if len(s.Attack) != 0 || len(s.Defend) != 0 || len(s.TroopsGained) != 0 {
		t.Errorf("expected empty aggregate, got %+v", s)
	}
	if s.Lines.Unrecognized != 2 {
		t.Errorf("unrecognized = %d, want 2", s.Lines.Unrecognized)
	}
}

// TestParse_BadTroopCount: the player still appears, at zero, and the line is counted.
func TestParse_BadTroopCount(t *testing.T) {
	s := Parse("Dana received some troops\nDana received 4 troops")

	got, ok := s.TroopsGained["Dana"]
	if !ok {
		t.Fatal("expected Dana to have an entry")
	}
	if got != 4 {
		t.Errorf("troopsGained[Dana] = %d, want 4", got)
	}
	if s.Lines.BadTroopCount != 1 {
		t.Errorf("bad troop count lines = %d, want 1", s.Lines.BadTroopCount)
	}
}

func TestParse_IndependentCalls(t *testing.T) {
	first := Parse("Bob received 2 troops")
	second := Parse("Bob received 2 troops")
	if first.TroopsGained["Bob"] != 2 || second.TroopsGained["Bob"] != 2 {
		t.Errorf("state leaked between calls: %d, %d",
			first.TroopsGained["Bob"], second.TroopsGained["Bob"])
	}
}

func TestParse_Empty(t *testing.T) {
	s := Parse("")
	if len(s.Players()) != 0 {
		t.Errorf("expected no players, got %v", s.Players())
	}
}
