package diagnosis

import "strings"

// labelKeys maps every question label to its result-table key.
var labelKeys = map[string]Category{
	LabelAimDueling:    CategoryAimDueling,
	LabelAccuracy:      CategoryAccuracy,
	LabelAwareness:     CategoryAwareness,
	LabelCommunication: CategoryCommunication,
	LabelGameSense:     CategoryGameSense,
}

// CategoryForLabel maps a question label to a result-table key. Known labels
// are resolved through labelKeys; anything else is normalized with
// NormalizeLabel. The returned key may be absent from the result table, in
// which case ResultFor falls back to BALANCED.
func CategoryForLabel(label string) Category {
	if c, ok := labelKeys[label]; ok {
		return c
	}
	return NormalizeLabel(label)
}

// NormalizeLabel uppercases label and replaces " & " and each remaining space
// or ampersand with an underscore.
func NormalizeLabel(label string) Category {
	s := strings.ToUpper(strings.TrimSpace(label))
	s = strings.ReplaceAll(s, " & ", "_")
	s = strings.NewReplacer(" ", "_", "&", "_").Replace(s)
	return Category(s)
}
