package session

import (
	"github.com/google/uuid"

	"github.com/abhisek/valodiag/internal/diagnosis"
)

// response is the recorded answer for one question slot.
type response struct {
	answered bool
	yes      bool
}

// State is one run through the question list. It replaces global "current
// question / answers" variables and is passed explicitly through the flow.
type State struct {
	ID        string
	Questions []diagnosis.Question
	Index     int
	responses []response
}

// New starts a session over questions.
func New(questions []diagnosis.Question) *State {
	return &State{
		ID:        uuid.New().String(),
		Questions: questions,
		responses: make([]response, len(questions)),
	}
}

// NewDefault starts a session over the fixed question set.
func NewDefault() *State {
	return New(diagnosis.Questions())
}

// Current returns the question being asked. ok is false once every
// question has been passed.
func (s *State) Current() (q diagnosis.Question, ok bool) {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return diagnosis.Question{}, false
	}
	return s.Questions[s.Index], true
}

// Done reports whether the session has moved past the last question.
func (s *State) Done() bool {
	return s.Index >= len(s.Questions)
}

// Answer records yes/no for the current question and advances.
func (s *State) Answer(yes bool) {
	if s.Done() {
		return
	}
	s.responses[s.Index] = response{answered: true, yes: yes}
	s.Index++
}

// Previous steps back one question and discards its answer.
func (s *State) Previous() bool {
	if s.Index == 0 {
		return false
	}
	s.Index--
	s.responses[s.Index] = response{}
	return true
}

// Next skips the current question without answering it. It never moves
// past the last question; finishing requires an answer.
func (s *State) Next() bool {
	if s.Index >= len(s.Questions)-1 {
		return false
	}
	s.Index++
	return true
}

// Restart clears every answer and returns to the first question.
func (s *State) Restart() {
	s.Index = 0
	s.responses = make([]response, len(s.Questions))
}

// Progress is the position shown while asking.
type Progress struct {
	Number  int // 1-based question number
	Total   int
	Percent float64 // 0.0–1.0
}

// Progress returns the position of the current question.
func (s *State) Progress() Progress {
	total := len(s.Questions)
	n := min(s.Index+1, total)
	p := Progress{Number: n, Total: total}
	if total > 0 {
		p.Percent = float64(n) / float64(total)
	}
	return p
}

// Answers returns the answered slots in question order.
func (s *State) Answers() []diagnosis.Answer {
	out := make([]diagnosis.Answer, 0, len(s.Questions))
	for i, r := range s.responses {
		if !r.answered {
			continue
		}
		q := s.Questions[i]
		out = append(out, diagnosis.Answer{QuestionID: q.ID, Yes: r.yes, Label: q.Label})
	}
	return out
}
