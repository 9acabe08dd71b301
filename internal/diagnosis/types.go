package diagnosis

// Category is a key in the diagnosis result table.
type Category string

const (
	CategoryAimDueling    Category = "AIM_DUELING"
	CategoryAccuracy      Category = "ACCURACY"
	CategoryAwareness     Category = "AWARENESS"
	CategoryCommunication Category = "COMMUNICATION"
	CategoryGameSense     Category = "GAME_SENSE"
	CategoryBalanced      Category = "BALANCED"
)

// Question is a single yes/no question. A "yes" answer means the player
// considers the question's area a problem.
type Question struct {
	ID    int
	Text  string
	Label string // human-readable category label, e.g. "Aim & Dueling"
}

// Answer is a response to one question, carrying a copy of the question's
// label for scoring.
type Answer struct {
	QuestionID int
	Yes        bool
	Label      string
}

// Result is the static content shown for a diagnosed category.
type Result struct {
	Category Category
	Title    string
	Message  string
	Tips     []string
}
