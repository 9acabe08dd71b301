package diagnosis

// seedResults holds one result per category, including the BALANCED fallback.
var seedResults = []Result{
	{
		Category: CategoryAimDueling,
		Title:    "🎯 Area Improvement: Aim & Dueling",
		Message:  "Kamu perlu fokus melatih aim dan confidence dalam duel 1v1. Coba latihan flick shots dan tracking di Practice Range.",
		Tips: []string{
			"Gunakan Deathmatch untuk berlatih duel realistik",
			"Latih flick shots di Practice Range 15 menit sehari",
			"Fokus pada crosshair placement di head level",
			"Practice strafing dan counter-strafing",
		},
	},
	{
		Category: CategoryAccuracy,
		Title:    "🔫 Area Improvement: Accuracy & Control",
		Message:  "Konsistensi tembakan perlu ditingkatkan. Perbaiki crosshair placement dan kontrol recoil senjata.",
		Tips: []string{
			"Latih spray control untuk senjata favoritmu",
			"Gunakan Sheriff untuk melatih tap shooting",
			"Practice strafe shooting untuk movement yang baik",
			"Fokus pada first shot accuracy",
		},
	},
	{
		Category: CategoryAwareness,
		Title:    "🗺️ Area Improvement: Map Awareness",
		Message:  "Tingkatkan kesadaran situasional dengan lebih sering mengecek minimap dan mendengarkan audio cues.",
		Tips: []string{
			"Cek minimap setiap 3-5 detik",
			"Dengarkan suara langkah dan ability musuh",
			"Pelajari common angles di setiap map",
			"Gunakan agent dengan recon abilities",
		},
	},
	{
		Category: CategoryCommunication,
		Title:    "🎤 Area Improvement: Team Communication",
		Message:  "Komunikasi yang efektif adalah kunci kemenangan tim. Berikan info yang jelas dan konsisten.",
		Tips: []string{
			"Gunakan ping system dengan efektif",
			"Beri callout yang spesifik (lokasi, jumlah musuh)",
			"Dengarkan dan respond callout tim",
			"Berikan info ability usage",
		},
	},
	{
		Category: CategoryGameSense,
		Title:    "🧠 Area Improvement: Game Sense & Strategy",
		Message:  "Perbaiki pengambilan keputusan dan understanding game flow. Pelajari kapan harus agresif atau passive.",
		Tips: []string{
			"Tonton VOD pro player untuk belajar decision making",
			"Pelajari agent role dan responsibilities",
			"Review gameplay sendiri untuk analisis kesalahan",
			"Pahami economy management",
		},
	},
	{
		Category: CategoryBalanced,
		Title:    "⭐ Well Rounded Player",
		Message:  "Berdasarkan jawabanmu, kamu menunjukkan fundamental yang solid! Pertahankan dan terus tingkatkan skill.",
		Tips: []string{
			"Coba master agent baru untuk expand skillset",
			"Latih advanced techniques seperti jump peeks",
			"Main scrim dengan tim terorganisir",
			"Analisis VOD pro player di role yang sama",
		},
	},
}

// registry indexes seedResults by category.
var registry map[Category]*Result

func init() {
	registry = make(map[Category]*Result, len(seedResults))
	for i := range seedResults {
		r := &seedResults[i]
		registry[r.Category] = r
	}
}

// ResultFor returns the result for category, or the BALANCED result if the
// category has no entry. The returned tips slice is a copy.
func ResultFor(category Category) Result {
	r, ok := registry[category]
	if !ok {
		r = registry[CategoryBalanced]
	}
	out := *r
	out.Tips = append([]string(nil), r.Tips...)
	return out
}

// HasResult reports whether category has its own entry in the result table.
func HasResult(category Category) bool {
	_, ok := registry[category]
	return ok
}

// AllResults returns every result in table order.
func AllResults() []Result {
	out := make([]Result, 0, len(seedResults))
	for _, r := range seedResults {
		out = append(out, ResultFor(r.Category))
	}
	return out
}

// ResultByTitle finds the result whose title is title. History entries
// store only the title, so this recovers the message and tips for display.
func ResultByTitle(title string) (Result, bool) {
	for _, r := range seedResults {
		if r.Title == title {
			return ResultFor(r.Category), true
		}
	}
	return Result{}, false
}
