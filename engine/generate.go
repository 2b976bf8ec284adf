package engine

// Generate produces a shuffled layout of 2*p.Pairs card codes in which every
// card can be paired under p.Mode.Rule.
//
// Pairs are spread over ranks by sampling rank slots without replacement:
// each rank hosts up to SlotsPerRank pairs and leaves the pool once full.
// Each rank's pairs are then given concrete suits for the rule and emitted as
// adjacent codes, so a half-plate split puts one card of every pair on each
// side.
func Generate(rng Rand, p Params) ([]Card, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	used := sampleRanks(rng, p.Ranks, p.Pairs, p.Mode.Rule.SlotsPerRank())

	ranks := uint16(p.Ranks)
	cards := make([]Card, 0, 2*p.Pairs)
	for rank, k := range used {
		if k == 0 {
			continue
		}
		for _, pair := range suitPairs(rng, p.Mode.Rule, k) {
			cards = append(cards,
				NewCard(pair[0], uint16(rank), ranks),
				NewCard(pair[1], uint16(rank), ranks))
		}
	}

	if p.Mode.FullPlate {
		shuffle(rng, cards)
		return cards, nil
	}
	cards = splitHalves(cards)
	shuffle(rng, cards[:p.Pairs])
	shuffle(rng, cards[p.Pairs:])
	return cards, nil
}

// sampleRanks distributes pairs over ranks. Each pick is uniform over the
// ranks that still have a free slot; a rank is dropped from the pool when
// its slots run out. The caller guarantees pairs <= ranks*slots.
func sampleRanks(rng Rand, ranks, pairs, slots int) []int {
	used := make([]int, ranks)
	eligible := make([]int, ranks)
	for i := range eligible {
		eligible[i] = i
	}
	for i := 0; i < pairs; i++ {
		j := rng.IntN(len(eligible))
		r := eligible[j]
		used[r]++
		if used[r] == slots {
			last := len(eligible) - 1
			eligible[j] = eligible[last]
			eligible = eligible[:last]
		}
	}
	return used
}

// suitPairs assigns suits to k pairs of one rank.
func suitPairs(rng Rand, rule MatchRule, k int) [][2]uint16 {
	pairs := make([][2]uint16, 0, k)
	switch rule {
	case AnyColor:
		s := drawSuits(rng, 2*k)
		for i := 0; i < k; i++ {
			pairs = append(pairs, [2]uint16{s[2*i], s[2*i+1]})
		}

	case SameColor:
		if k == 1 {
			x := uint16(rng.IntN(int(SuitsPerDeck)))
			pairs = append(pairs, [2]uint16{x, (x + 2) % SuitsPerDeck})
			break
		}
		pairs = append(pairs,
			orient(rng, SuitHearts, SuitDiamonds),
			orient(rng, SuitClubs, SuitSpades))

	case Zebra:
		if k == 1 {
			x := uint16(rng.IntN(int(SuitsPerDeck)))
			pairs = append(pairs, orient(rng, x, (x+1)%SuitsPerDeck))
			break
		}
		red := [2]uint16{SuitHearts, SuitDiamonds}
		black := [2]uint16{SuitClubs, SuitSpades}
		if rng.IntN(2) == 1 {
			black[0], black[1] = black[1], black[0]
		}
		pairs = append(pairs,
			orient(rng, red[0], black[0]),
			orient(rng, red[1], black[1]))

	case TwoDecks:
		for _, x := range drawSuits(rng, k) {
			pairs = append(pairs, [2]uint16{x, x})
		}

	case CheckeredDeck:
		for _, x := range drawSuits(rng, k) {
			pairs = append(pairs, orient(rng, x, x+CheckeredOffset))
		}
	}
	return pairs
}

// drawSuits picks n distinct suits of one deck uniformly (partial
// Fisher-Yates).
func drawSuits(rng Rand, n int) []uint16 {
	suits := [SuitsPerDeck]uint16{SuitHearts, SuitClubs, SuitDiamonds, SuitSpades}
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(suits)-i)
		suits[i], suits[j] = suits[j], suits[i]
	}
	out := make([]uint16, n)
	copy(out, suits[:n])
	return out
}

// orient returns a and b in random order.
func orient(rng Rand, a, b uint16) [2]uint16 {
	if rng.IntN(2) == 1 {
		return [2]uint16{b, a}
	}
	return [2]uint16{a, b}
}

// splitHalves moves even positions to the first half and odd positions to
// the second.
func splitHalves(cards []Card) []Card {
	out := make([]Card, 0, len(cards))
	for i := 0; i < len(cards); i += 2 {
		out = append(out, cards[i])
	}
	for i := 1; i < len(cards); i += 2 {
		out = append(out, cards[i])
	}
	return out
}

// shuffle is an in-place Fisher-Yates shuffle.
func shuffle(rng Rand, cards []Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
