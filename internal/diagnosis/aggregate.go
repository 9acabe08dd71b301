package diagnosis

// ScoreEntry is the affirmative count for one label.
type ScoreEntry struct {
	Label string
	Count int
}

// ScoreTable holds per-label counts in order of first appearance.
type ScoreTable []ScoreEntry

// Scores builds the score table for answers. Every label seen gets an entry,
// even if all of its answers were negative.
func Scores(answers []Answer) ScoreTable {
	table := make(ScoreTable, 0, len(answers))
	index := make(map[string]int, len(answers))
	for _, a := range answers {
		i, ok := index[a.Label]
		if !ok {
			i = len(table)
			index[a.Label] = i
			table = append(table, ScoreEntry{Label: a.Label})
		}
		if a.Yes {
			table[i].Count++
		}
	}
	return table
}

// Leader returns the label with the strictly highest count. Ties keep the
// earlier label. ok is false when every count is zero.
func (t ScoreTable) Leader() (label string, ok bool) {
	max := 0
	for _, e := range t {
		if e.Count > max {
			max = e.Count
			label = e.Label
		}
	}
	return label, max > 0
}

// Aggregate returns the category diagnosed by answers. It is total: empty or
// all-negative input, and labels without a result entry, yield BALANCED.
func Aggregate(answers []Answer) Category {
	label, ok := Scores(answers).Leader()
	if !ok {
		return CategoryBalanced
	}
	c := CategoryForLabel(label)
	if !HasResult(c) {
		return CategoryBalanced
	}
	return c
}

// Diagnose returns the result content for answers.
func Diagnose(answers []Answer) Result {
	return ResultFor(Aggregate(answers))
}
