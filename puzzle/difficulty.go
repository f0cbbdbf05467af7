package puzzle

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Difficulty selects a combo chain from a player export and bounds the crew
// catalog built for it.
type Difficulty struct {
	Name       string
	DescID     int // status desc_id in the player export
	MinRarity  int // lowest crew rarity (stars) eligible
	MaxRarity  int // highest crew rarity (stars) eligible
	MinSetSize int // smallest trait combination indexed by the catalog
	MaxSetSize int // largest trait combination indexed by the catalog
}

var difficulties = []Difficulty{
	{Name: "easy", DescID: 1, MinRarity: 1, MaxRarity: 2, MinSetSize: 2, MaxSetSize: 4},
	{Name: "normal", DescID: 2, MinRarity: 1, MaxRarity: 3, MinSetSize: 2, MaxSetSize: 4},
	{Name: "hard", DescID: 3, MinRarity: 1, MaxRarity: 4, MinSetSize: 2, MaxSetSize: 4},
	{Name: "brutal", DescID: 4, MinRarity: 1, MaxRarity: 4, MinSetSize: 2, MaxSetSize: 4},
	{Name: "nm", DescID: 5, MinRarity: 1, MaxRarity: 5, MinSetSize: 3, MaxSetSize: 4},
	{Name: "unm", DescID: 6, MinRarity: 1, MaxRarity: 5, MinSetSize: 3, MaxSetSize: 4},
}

// DefaultDifficulty is the hardest tier ("unm").
var DefaultDifficulty = difficulties[len(difficulties)-1]

// ParseDifficulty looks a difficulty up by name, case-insensitively.
func ParseDifficulty(name string) (Difficulty, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, d := range difficulties {
		if d.Name == key {
			return d, nil
		}
	}

	return Difficulty{}, errors.WithHintf(
		errors.Wrapf(ErrUnknownDifficulty, "%q", name),
		"valid difficulties: %s", strings.Join(DifficultyNames(), ", "))
}

// DifficultyNames lists the known difficulty names, easiest first.
func DifficultyNames() []string {
	out := make([]string, len(difficulties))
	for i, d := range difficulties {
		out[i] = d.Name
	}

	return out
}
