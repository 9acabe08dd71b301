package profile

import "strconv"

// Ranks by number of completed diagnoses.
const (
	RankNew       = "New Player"
	RankImproving = "Improving Player"
	RankAdvanced  = "Advanced Player"
	RankExpert    = "Expert Analyst"
)

// NoActivity is shown as the last activity of an empty history.
const NoActivity = "Belum ada aktivitas"

// Summary is the derived, display-ready view of one profile.
type Summary struct {
	Username         string
	TotalDiagnoses   int
	Rank             string
	ImprovementScore string // min(n*10, 100), or "-" with no history
	CompletionRate   string
	ImprovementRate  string
	LastActivity     string // newest entry's display date
	MemberSince      string // empty when createdAt is missing or invalid
}

// RankFor maps a diagnosis count to a rank.
func RankFor(total int) string {
	switch {
	case total >= 10:
		return RankExpert
	case total >= 5:
		return RankAdvanced
	case total >= 1:
		return RankImproving
	default:
		return RankNew
	}
}

// Summarize derives display statistics. p may be nil.
func Summarize(username string, p *Profile, locale string) Summary {
	sum := Summary{
		Username:         username,
		Rank:             RankNew,
		ImprovementScore: "-",
		CompletionRate:   "0%",
		ImprovementRate:  "-",
		LastActivity:     NoActivity,
	}
	if p == nil {
		return sum
	}

	if t, ok := p.Created(); ok {
		sum.MemberSince = FormatDate(t.Local(), locale)
	}

	n := len(p.History)
	sum.TotalDiagnoses = n
	sum.Rank = RankFor(n)
	if n == 0 {
		return sum
	}

	sum.ImprovementScore = strconv.Itoa(min(n*10, 100))
	sum.CompletionRate = "100%"
	sum.ImprovementRate = "Good"
	sum.LastActivity = p.History[0].Date
	return sum
}
