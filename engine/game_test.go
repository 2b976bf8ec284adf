package engine

import (
	"errors"
	"slices"
	"testing"
)

// TestXorShiftZeroSeed verifies a zero seed behaves as seed 1.
func TestXorShiftZeroSeed(t *testing.T) {
	a, b := NewXorShift(0), NewXorShift(1)
	for i := 0; i < 8; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("step %d: %d != %d", i, x, y)
		}
	}
}

func TestXorShiftNonZero(t *testing.T) {
	x := NewXorShift(42)
	for i := 0; i < 1000; i++ {
		if x.Uint64() == 0 {
			t.Fatalf("step %d produced 0", i)
		}
	}
}

// TestNewDeckInitialState verifies a fresh deck is face down and unowned.
func TestNewDeckInitialState(t *testing.T) {
	p := Params{Pairs: 12, Ranks: 8, Mode: DefaultMode(), Players: 2}
	d, err := NewDeck(NewRand(42), p)
	if err != nil {
		t.Fatalf("NewDeck: %v", err)
	}
	if d.Len() != 24 || d.Pairs() != 12 {
		t.Fatalf("Len/Pairs = %d/%d, want 24/12", d.Len(), d.Pairs())
	}
	if d.Ranks() != 8 || d.Suits() != SuitsPerDeck {
		t.Errorf("Ranks/Suits = %d/%d", d.Ranks(), d.Suits())
	}
	if d.PlayerCount() != 2 || d.Player() != 0 {
		t.Errorf("PlayerCount/Player = %d/%d, want 2/0", d.PlayerCount(), d.Player())
	}
	if d.Mode() != p.Mode {
		t.Errorf("Mode() = %+v, want %+v", d.Mode(), p.Mode)
	}
	for i := 0; i < d.Len(); i++ {
		c := d.Cell(i)
		if c.Owner() != 0 || c.Opens() != 0 || c.Revealed() {
			t.Errorf("cell %d = %+v, want untouched", i, c)
		}
	}
	if d.Opened().Len() != 0 {
		t.Errorf("Opened().Len() = %d, want 0", d.Opened().Len())
	}
	if slices.ContainsFunc(d.Scores(), func(s int) bool { return s != 0 }) {
		t.Errorf("Scores() = %v, want zeros", d.Scores())
	}
}

func TestNewDeckCheckeredSuits(t *testing.T) {
	d, err := NewDeck(NewRand(1), Params{Pairs: 4, Ranks: 2, Mode: Mode{Rule: CheckeredDeck, FullPlate: true}, Players: 1})
	if err != nil {
		t.Fatal(err)
	}
	if d.Suits() != 2*SuitsPerDeck {
		t.Errorf("Suits() = %d, want %d", d.Suits(), 2*SuitsPerDeck)
	}
}

func TestNewDeckError(t *testing.T) {
	_, err := NewDeck(NewRand(1), Params{Pairs: 100, Ranks: 2, Mode: DefaultMode(), Players: 1})
	if !errors.Is(err, ErrUnsatisfiable) {
		t.Errorf("error = %v, want ErrUnsatisfiable", err)
	}
}

func TestNewDeckFromLayoutErrors(t *testing.T) {
	p := Params{Pairs: 2, Ranks: 2, Mode: Mode{Rule: AnyColor, FullPlate: true}, Players: 1}
	if _, err := NewDeckFromLayout([]Card{0, 1, 2}, p); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("short layout: error = %v", err)
	}
	if _, err := NewDeckFromLayout([]Card{0, 1, 2, 8}, p); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("card out of range: error = %v", err)
	}
	bad := p
	bad.Players = 0
	if _, err := NewDeckFromLayout([]Card{0, 1, 2, 3}, bad); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("zero players: error = %v", err)
	}
	d, err := NewDeckFromLayout([]Card{3, 2, 1, 0}, p)
	if err != nil {
		t.Fatalf("valid layout: %v", err)
	}
	if got := d.Cards(); !slices.Equal(got, []Card{3, 2, 1, 0}) {
		t.Errorf("Cards() = %v", got)
	}
}

// TestCloneIndependence verifies plays on a clone leave the source deck intact.
func TestCloneIndependence(t *testing.T) {
	d := layoutDeck(t, Mode{Rule: AnyColor, FullPlate: true}, 2, 2, h0, h1, c0, c1)
	d.Play(0)
	c := d.Clone()
	c.Play(2)

	if d.Owner(0) != 0 || d.Opens(2) != 0 {
		t.Error("clone play mutated the source deck")
	}
	if d.Opened().Len() != 1 {
		t.Errorf("source Opened().Len() = %d, want 1", d.Opened().Len())
	}
	if c.Owner(0) != 1 || c.Owner(2) != 1 {
		t.Error("clone play did not apply")
	}
}

func TestOpenedAt(t *testing.T) {
	var o Opened
	mustPanic(t, "empty At", func() { o.At(0) })
	o.push(5)
	if o.At(0) != 5 || !o.Contains(5) || o.Contains(4) {
		t.Errorf("Opened = %+v", o)
	}
	mustPanic(t, "At past len", func() { o.At(1) })
}

func TestCellOpensSaturate(t *testing.T) {
	var c Cell
	c.opens = maxOpens
	c.flip()
	if c.Opens() != maxOpens {
		t.Errorf("Opens() = %d, want %d", c.Opens(), maxOpens)
	}
}

func TestCellClaimRange(t *testing.T) {
	var c Cell
	c.claim(MaxPlayers - 1)
	if c.Owner() != MaxPlayers {
		t.Errorf("Owner() = %d, want %d", c.Owner(), MaxPlayers)
	}
	mustPanic(t, "claim past 2-bit owner", func() { c.claim(MaxPlayers) })
}

func TestDisplayFullPlate(t *testing.T) {
	d := layoutDeck(t, Mode{Rule: AnyColor, FullPlate: true}, 2, 1, 0, 1, 2, 3)
	want := "mode: rule=any_color combo=false full_plate=true duel=false\n" +
		"------\n" +
		"| 0 1|\n" +
		"| 2 3|\n" +
		"------"
	if got := d.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestDisplayHalfPlate(t *testing.T) {
	d := layoutDeck(t, Mode{Rule: AnyColor}, 2, 1, 0, 1, 2, 3)
	want := "mode: rule=any_color combo=false full_plate=false duel=false\n" +
		"-------\n" +
		"| 0| 2|\n" +
		"| 1| 3|\n" +
		"-------"
	if got := d.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

// TestPositionUnique verifies every cell maps to its own grid slot.
func TestPositionUnique(t *testing.T) {
	for _, full := range []bool{true, false} {
		for pairs := 1; pairs <= 20; pairs++ {
			d, err := NewDeck(NewRand(uint64(pairs)), Params{Pairs: pairs, Ranks: 10, Mode: Mode{Rule: Zebra, FullPlate: full}, Players: 1})
			if err != nil {
				t.Fatal(err)
			}
			w, h := d.Width(), d.Height()
			if w*h < d.Len() {
				t.Fatalf("full=%v pairs=%d: %dx%d grid holds fewer than %d cells", full, pairs, w, h, d.Len())
			}
			seen := make(map[[2]int]bool)
			for i := 0; i < d.Len(); i++ {
				x, y := d.Position(i)
				if x < 0 || x >= w || y < 0 || y >= h {
					t.Fatalf("full=%v pairs=%d: cell %d at (%d,%d) outside %dx%d", full, pairs, i, x, y, w, h)
				}
				if seen[[2]int{x, y}] {
					t.Fatalf("full=%v pairs=%d: cell %d collides at (%d,%d)", full, pairs, i, x, y)
				}
				seen[[2]int{x, y}] = true
				if !full && (i < pairs) != (x < w/2) {
					t.Errorf("pairs=%d: cell %d at column %d is in the wrong half", pairs, i, x)
				}
			}
		}
	}
}
