package quiz

import "github.com/abhisek/valodiag/internal/diagnosis"

// quizCompleteMsg is sent once the answers are diagnosed and recorded.
type quizCompleteMsg struct {
	Result diagnosis.Result
	Err    error
}
