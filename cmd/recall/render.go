package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/azarmadr/recall-stones/internal/game"
	"github.com/google/uuid"
)

// printBoard draws face-down cells as their index and visible cells as
// rank and suit.
func printBoard(out io.Writer, st game.BoardState) {
	grid := make([][]string, st.Height)
	for y := range grid {
		grid[y] = make([]string, st.Width)
	}
	width := len(strconv.Itoa(len(st.Cells)-1)) + 2
	for _, c := range st.Cells {
		label := "#" + strconv.Itoa(c.Cell)
		if c.Card != nil {
			label = strconv.Itoa(c.Card.Rank) + c.Card.Suit
			if c.OwnerID != uuid.Nil {
				label = strings.ToLower(label) + "*"
			}
		}
		grid[c.Y][c.X] = label
	}

	half := st.Width
	if !st.Mode.FullPlate {
		half = st.Width / 2
	}
	for _, row := range grid {
		var b strings.Builder
		for x, s := range row {
			if x == half {
				b.WriteString(" |")
			}
			fmt.Fprintf(&b, " %*s", width, s)
		}
		fmt.Fprintln(out, b.String())
	}
	printScores(out, st)
}

func printScores(out io.Writer, st game.BoardState) {
	for _, p := range st.Players {
		marker := " "
		if p.IsCurrentTurn {
			marker = ">"
		}
		fmt.Fprintf(out, "%s %-8s score %3d  opened %3d  turns %3d\n", marker, p.Name, p.Score, p.Owned, p.Turns)
	}
}

func printEvent(out io.Writer, g *game.MemoryGame, ev game.GameEvent) {
	name := ""
	if ev.User != nil {
		if seat, ok := g.PlayerToEngine[ev.User.ID]; ok {
			name = g.Players[seat].Name
		}
	}
	switch ev.Type {
	case game.EventCardFlip:
		fmt.Fprintf(out, "%s flips #%d: %d%s\n", name, ev.Card.Cell, ev.Card.Rank, ev.Card.Suit)
	case game.EventPairMatched:
		fmt.Fprintf(out, "%s matches #%d and #%d (score %v)\n", name, ev.Card1.Cell, ev.Card2.Cell, ev.Payload["score"])
	case game.EventPairMissed:
		fmt.Fprintf(out, "%s misses\n", name)
	case game.EventPlayerTurn:
		fmt.Fprintf(out, "-- %s to move\n", name)
	}
}

func printResult(out io.Writer, st game.BoardState) {
	fmt.Fprintln(out, "Game over")
	printScores(out, st)
	for _, p := range st.Players {
		if p.PlayerID != st.WinnerID {
			continue
		}
		if st.Draw {
			fmt.Fprintf(out, "Draw, led by %s\n", p.Name)
		} else {
			fmt.Fprintf(out, "%s wins\n", p.Name)
		}
	}
}
