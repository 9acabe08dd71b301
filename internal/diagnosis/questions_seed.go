package diagnosis

// Category labels as shown to the player.
const (
	LabelAimDueling    = "Aim & Dueling"
	LabelAccuracy      = "Accuracy"
	LabelAwareness     = "Awareness"
	LabelCommunication = "Communication"
	LabelGameSense     = "Game Sense"
)

// seedQuestions is the fixed question set, asked in order.
var seedQuestions = []Question{
	{
		ID:    1,
		Text:  "Apakah kamu sering kalah dalam duel 1 lawan 1?",
		Label: LabelAimDueling,
	},
	{
		ID:    2,
		Text:  "Apakah kamu sering meleset saat menembak meskipun crosshair sudah di target?",
		Label: LabelAccuracy,
	},
	{
		ID:    3,
		Text:  "Apakah kamu sering mati dari arah yang tidak terduga atau dari belakang?",
		Label: LabelAwareness,
	},
	{
		ID:    4,
		Text:  "Apakah kamu jarang berkomunikasi dengan tim saat bermain?",
		Label: LabelCommunication,
	},
	{
		ID:    5,
		Text:  "Apakah kamu sering salah dalam mengambil timing rotasi atau push?",
		Label: LabelGameSense,
	},
}

// Questions returns a copy of the fixed question list in asking order.
func Questions() []Question {
	out := make([]Question, len(seedQuestions))
	copy(out, seedQuestions)
	return out
}
