package progress

import (
	"encoding/json"
	"errors"
	"reflect"
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/arbolin/internal/rules"
)

func won(d rules.Difficulty, score int) rules.GameResult {
	return rules.GameResult{Outcome: rules.OutcomeWon, Won: true, Score: score, Difficulty: d}
}

func lost(d rules.Difficulty, score int) rules.GameResult {
	return rules.GameResult{Outcome: rules.OutcomeLost, Score: score, Difficulty: d}
}

func TestApplyNormalWinUnlocksGoldenAndSakura(t *testing.T) {
	prev := Progress{UnlockedSkins: []string{"default"}}

	p := Apply(prev, won(rules.Normal, 50), rules.Modes{})

	if p.TotalSprouts != 50 {
		t.Errorf("TotalSprouts = %d, expected 50", p.TotalSprouts)
	}
	for _, skin := range []string{"golden", "sakura"} {
		if !p.HasSkin(skin) {
			t.Errorf("expected %q unlocked, have %v", skin, p.UnlockedSkins)
		}
	}
	if !p.Completed(rules.Normal) {
		t.Errorf("CompletedDifficulties = %v, expected normal", p.CompletedDifficulties)
	}
	if p.TotalLosses != 0 {
		t.Errorf("win counted as loss")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	prev := Default()
	before := prev.Clone()

	Apply(prev, won(rules.Hard, 30), rules.Modes{})

	if !reflect.DeepEqual(prev, before) {
		t.Fatalf("input mutated: %+v", prev)
	}
}

func TestApplyCurrencyByMode(t *testing.T) {
	tests := []struct {
		name  string
		modes rules.Modes
		want  [3]int // sprouts, ashes, bananas
	}{
		{"classic", rules.Modes{}, [3]int{7, 0, 0}},
		{"fuegorin", rules.Modes{Fuegorin: true}, [3]int{0, 7, 0}},
		{"banana", rules.Modes{Banana: true}, [3]int{0, 0, 7}},
		{"banana beats fuegorin", rules.Modes{Banana: true, Fuegorin: true}, [3]int{0, 0, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Apply(Default(), lost(rules.Easy, 7), tt.modes)
			got := [3]int{p.TotalSprouts, p.TotalAshes, p.TotalBananas}
			if got != tt.want {
				t.Errorf("got %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestApplyLossCounters(t *testing.T) {
	p := Default()
	p = Apply(p, lost(rules.Easy, 0), rules.Modes{Fuegorin: true})
	p = Apply(p, lost(rules.Easy, 0), rules.Modes{Banana: true})
	p = Apply(p, rules.GameResult{Outcome: rules.OutcomeSecretFound, UnlockedSecret: 2}, rules.Modes{})

	if p.TotalLosses != 3 || p.FuegorinLosses != 1 || p.BananaLosses != 1 {
		t.Fatalf("losses = %d/%d/%d", p.TotalLosses, p.FuegorinLosses, p.BananaLosses)
	}
	if !p.HasStory(2) {
		t.Fatalf("story 2 not unlocked: %v", p.UnlockedStoryParts)
	}

	p = Apply(p, rules.GameResult{Outcome: rules.OutcomeSecretFound, UnlockedSecret: 3}, rules.Modes{Fuegorin: true})
	if p.TotalLosses != 4 || p.FuegorinLosses != 2 {
		t.Fatalf("fuegorin secret losses = %d/%d", p.TotalLosses, p.FuegorinLosses)
	}
}

func TestApplySecretEndingsAdvanceGhost(t *testing.T) {
	prev := Default()
	prev.TotalLosses = GhostLosses - 1

	p := Apply(prev, rules.GameResult{Outcome: rules.OutcomeSecretFound, UnlockedSecret: 1}, rules.Modes{})
	if !p.HasSkin("ghost") {
		t.Fatalf("ghost locked at %d losses", p.TotalLosses)
	}
}

func TestApplyCompletionRules(t *testing.T) {
	tests := []struct {
		name   string
		result rules.GameResult
		modes  rules.Modes
		want   bool
	}{
		{"classic win", won(rules.Hard, 30), rules.Modes{}, true},
		{"mutant win", won(rules.Hard, 30), rules.Modes{Mutant: true}, true},
		{"endless", won(rules.Hard, 30), rules.Modes{Endless: true}, false},
		{"fuegorin", won(rules.Hard, 30), rules.Modes{Fuegorin: true}, false},
		{"loss", lost(rules.Hard, 3), rules.Modes{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Apply(Default(), tt.result, tt.modes)
			if got := p.Completed(rules.Hard); got != tt.want {
				t.Errorf("completed = %v, expected %v", got, tt.want)
			}
			if got := p.HasSkin("autumn"); got != tt.want {
				t.Errorf("autumn = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestApplyCrossesSeveralThresholdsAtOnce(t *testing.T) {
	prev := Default()
	prev.TotalLosses = 49
	prev.FuegorinLosses = 24
	prev.TotalSprouts = 45

	p := Apply(prev, rules.GameResult{
		Outcome:            rules.OutcomeLost,
		Score:              5,
		Difficulty:         rules.Hacker,
		HackerSurvivalTime: 51,
		TotalSurvivalTime:  130,
	}, rules.Modes{Fuegorin: true})

	for _, skin := range []string{"ghost", "peruano", "venezolano", "ancient", "bolivia"} {
		if !p.HasSkin(skin) {
			t.Errorf("%s not unlocked", skin)
		}
	}
	// fuegorin pays in ashes, so the sprout total did not move
	if p.TotalSprouts != 45 || p.TotalAshes != 5 {
		t.Errorf("currencies = %d/%d", p.TotalSprouts, p.TotalAshes)
	}
	if p.HasSkin("golden") {
		t.Error("golden unlocked by ashes")
	}
}

func TestApplyVoidAfterAllTiers(t *testing.T) {
	p := Default()
	for _, d := range rules.Difficulties {
		if p.HasSkin("void") {
			t.Fatalf("void unlocked before clearing %s", d)
		}
		p = Apply(p, won(d, d.Info().WinScore), rules.Modes{})
	}
	if !p.HasSkin("void") {
		t.Fatalf("void locked after clearing every tier: %v", p.CompletedDifficulties)
	}
}

func TestApplyItemSecrets(t *testing.T) {
	p := Apply(Default(), rules.GameResult{
		Outcome: rules.OutcomeSecretFound, UnlockedSecret: rules.PeelSecretID, FoundPeel: true,
	}, rules.Modes{Fuegorin: true})
	if !p.HasSacredPeel || p.HasCaramelBanana {
		t.Fatalf("peel=%v caramel=%v", p.HasSacredPeel, p.HasCaramelBanana)
	}
	if p.HasStory(rules.PeelSecretID) {
		t.Fatal("item secret recorded as story part")
	}
	if p.TotalLosses != 1 || p.FuegorinLosses != 1 {
		t.Fatalf("losses = %d/%d", p.TotalLosses, p.FuegorinLosses)
	}
}

func TestRedeemMasterCode(t *testing.T) {
	p, ok := Redeem(Default(), "  arbolin-master ")
	if !ok {
		t.Fatal("master code rejected")
	}
	if !p.UnlockedBananaMode || !p.HasSacredPeel || !p.HasCaramelBanana {
		t.Fatalf("flags not set: %+v", p)
	}
	for _, id := range rules.SkinIDs() {
		if !p.HasSkin(id) {
			t.Errorf("skin %s missing", id)
		}
	}
	if !p.FuegorinAvailable() {
		t.Error("story not complete after master code")
	}

	again, ok := Redeem(p, rules.MasterCode)
	if !ok {
		t.Fatal("second redeem rejected")
	}
	if !reflect.DeepEqual(again, p) {
		t.Fatalf("second redeem changed state:\n%+v\n%+v", p, again)
	}
}

func TestRedeemGroundCodes(t *testing.T) {
	p := Default()
	for i, c := range rules.GroundCodes {
		if p.BananaAvailable() {
			t.Fatalf("banana unlocked after %d codes", i)
		}
		var ok bool
		p, ok = Redeem(p, c.Code)
		if !ok {
			t.Fatalf("code %s rejected", c.Code)
		}
	}
	if !p.BananaAvailable() {
		t.Fatal("banana locked after every ground code")
	}

	same, ok := Redeem(p, rules.GroundCodes[0].Code)
	if !ok || !reflect.DeepEqual(same, p) {
		t.Fatal("re-redeeming a ground code changed state")
	}
}

func TestRedeemUnknownCode(t *testing.T) {
	prev := Default()
	p, ok := Redeem(prev, "NOT-A-CODE")
	if ok {
		t.Fatal("unknown code accepted")
	}
	if !reflect.DeepEqual(p, prev) {
		t.Fatal("unknown code changed state")
	}
}

func TestBuy(t *testing.T) {
	prev := Default()
	prev.TotalSprouts = 25
	prev.TotalAshes = 100

	p, err := Buy(prev, rules.PowerSpeed, rules.Modes{})
	if err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if p.TotalSprouts != 10 || prev.TotalSprouts != 25 {
		t.Fatalf("sprouts = %d (prev %d)", p.TotalSprouts, prev.TotalSprouts)
	}

	if _, err := Buy(p, rules.PowerTripleShot, rules.Modes{}); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	p, err = Buy(prev, rules.PowerTripleShot, rules.Modes{Fuegorin: true})
	if err != nil {
		t.Fatalf("Buy with ashes: %v", err)
	}
	if p.TotalAshes != 60 || p.TotalSprouts != 25 {
		t.Fatalf("ashes = %d sprouts = %d", p.TotalAshes, p.TotalSprouts)
	}

	if _, err := Buy(prev, "laser", rules.Modes{}); !errors.Is(err, rules.ErrUnknownPowerUp) {
		t.Fatalf("expected ErrUnknownPowerUp, got %v", err)
	}
}

func TestAchievements(t *testing.T) {
	p := Default()
	p.TotalSprouts = 20
	p.TotalLosses = 30
	p.UnlockedSkins = append(p.UnlockedSkins, "ghost")

	list := Achievements(p)
	if len(list) != 7 {
		t.Fatalf("len = %d, expected 7", len(list))
	}

	byID := map[string]Achievement{}
	for _, a := range list {
		byID[a.ID] = a
	}
	if a := byID["collect_50"]; a.Unlocked || a.Current != 20 || a.Percent() != 40 {
		t.Errorf("collect_50 = %+v (%d%%)", a, a.Percent())
	}
	if a := byID["lose_25"]; !a.Unlocked || a.Percent() != 100 {
		t.Errorf("lose_25 = %+v", a)
	}
	if a := byID["lose_50"]; a.Unlocked || a.Percent() != 60 {
		t.Errorf("lose_50 = %+v", a)
	}
}

func TestNormalizeRepairsStoredRecord(t *testing.T) {
	var p Progress
	raw := `{"totalSprouts":-3,"completedDifficulties":["easy","nope","easy"],
		"unlockedSkins":["golden","golden"],"redeemedCodes":[" banana-h4rd ",""]}`
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatal(err)
	}

	p = p.Normalize()

	if p.TotalSprouts != 0 {
		t.Errorf("TotalSprouts = %d", p.TotalSprouts)
	}
	if !slices.Equal(p.CompletedDifficulties, []rules.Difficulty{rules.Easy}) {
		t.Errorf("CompletedDifficulties = %v", p.CompletedDifficulties)
	}
	if !slices.Equal(p.UnlockedSkins, []string{"default", "golden"}) {
		t.Errorf("UnlockedSkins = %v", p.UnlockedSkins)
	}
	if !slices.Equal(p.RedeemedCodes, []string{"BANANA-H4RD"}) {
		t.Errorf("RedeemedCodes = %v", p.RedeemedCodes)
	}
	if p.UnlockedStoryParts == nil {
		t.Error("nil story set")
	}
}

func TestSettingsNormalize(t *testing.T) {
	s := Settings{Difficulty: "impossible", PlayerName: "  a\tvery long player name  ", Controls: "emacs"}.Normalize()

	if s.Difficulty != rules.Easy || s.Controls != ControlsKeys {
		t.Errorf("got %+v", s)
	}
	if s.PlayerName != "avery long p" {
		t.Errorf("PlayerName = %q", s.PlayerName)
	}
	if got := (Settings{PlayerName: "   "}).Normalize().PlayerName; got != DefaultPlayerName {
		t.Errorf("blank name = %q", got)
	}
}

func drawResult(t *rapid.T) (rules.GameResult, rules.Modes) {
	outcome := rapid.SampledFrom([]rules.Outcome{rules.OutcomeLost, rules.OutcomeWon, rules.OutcomeSecretFound}).Draw(t, "outcome")
	r := rules.GameResult{
		Outcome:            outcome,
		Won:                outcome == rules.OutcomeWon,
		Score:              rapid.IntRange(0, 120).Draw(t, "score"),
		Difficulty:         rapid.SampledFrom(rules.Difficulties).Draw(t, "difficulty"),
		HackerSurvivalTime: rapid.Float64Range(0, 80).Draw(t, "hacker"),
		TotalSurvivalTime:  rapid.Float64Range(0, 200).Draw(t, "total"),
	}
	if outcome == rules.OutcomeSecretFound {
		r.UnlockedSecret = rapid.SampledFrom([]int{1, 2, 3, 4, 5, rules.PeelSecretID, rules.CaramelSecretID}).Draw(t, "secret")
	}
	m := rules.Modes{
		Mutant:   rapid.Bool().Draw(t, "mutant"),
		Endless:  rapid.Bool().Draw(t, "endless"),
		Fuegorin: rapid.Bool().Draw(t, "fuegorin"),
		Banana:   rapid.Bool().Draw(t, "banana"),
	}
	return r, m
}

// Unlock sets never shrink and currencies never drop across any sequence
// of results.
func TestApplyMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := Default()
		for range rapid.IntRange(1, 30).Draw(t, "sessions") {
			r, m := drawResult(t)
			next := Apply(p, r, m)

			for _, s := range p.UnlockedSkins {
				if !next.HasSkin(s) {
					t.Fatalf("skin %s lost", s)
				}
			}
			for _, id := range p.UnlockedStoryParts {
				if !next.HasStory(id) {
					t.Fatalf("story %d lost", id)
				}
			}
			for _, d := range p.CompletedDifficulties {
				if !next.Completed(d) {
					t.Fatalf("difficulty %s lost", d)
				}
			}
			if next.TotalSprouts < p.TotalSprouts || next.TotalAshes < p.TotalAshes || next.TotalBananas < p.TotalBananas {
				t.Fatal("currency decreased")
			}
			p = next
		}
	})
}

// Applying a result that only re-confirms existing unlocks is the same as
// normalizing: the unlock part of the reducer is idempotent.
func TestUnlockIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r, m := drawResult(t)
		once := Apply(Default(), r, m)

		zero := r
		zero.Score = 0
		twice := Apply(once, zero, m)

		if !reflect.DeepEqual(once.unlockThresholds(), once) {
			t.Fatal("thresholds not idempotent")
		}
		if !slices.Equal(once.UnlockedSkins, twice.UnlockedSkins) ||
			!slices.Equal(once.UnlockedStoryParts, twice.UnlockedStoryParts) ||
			!slices.Equal(once.CompletedDifficulties, twice.CompletedDifficulties) {
			t.Fatalf("re-confirming result changed unlocks:\n%+v\n%+v", once, twice)
		}
	})
}
