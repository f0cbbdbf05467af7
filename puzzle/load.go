package puzzle

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Format names the serialization of a puzzle document.
type Format int

const (
	// FormatJSON decodes with encoding/json (player exports are JSON).
	FormatJSON Format = iota

	// FormatYAML decodes with yaml.v3.
	FormatYAML
)

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
}

// status is one boss battle entry of a player export.
type status struct {
	DescID int     `json:"desc_id" yaml:"desc_id"`
	Combo  *Puzzle `json:"combo" yaml:"combo"`
}

// document accepts both a bare puzzle and a player export.
type document struct {
	Root *struct {
		Statuses []status `json:"statuses" yaml:"statuses"`
	} `json:"fleet_boss_battles_root" yaml:"fleet_boss_battles_root"`

	Puzzle `yaml:",inline"`
}

// Load reads and validates the puzzle stored at path.
func Load(path string, d Difficulty) (Puzzle, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Puzzle{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Puzzle{}, errors.Wrapf(err, "puzzle: open %s", path)
	}
	defer f.Close()

	p, err := Decode(f, format, d)
	if err != nil {
		return Puzzle{}, errors.Wrapf(err, "%s", path)
	}

	return p, nil
}

// Decode reads one document from r. For player exports the combo matching
// d.DescID is returned; bare puzzles ignore d.
func Decode(r io.Reader, format Format, d Difficulty) (Puzzle, error) {
	var doc document
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&doc)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	default:
		return Puzzle{}, ErrUnsupportedFormat
	}
	if err != nil {
		return Puzzle{}, errors.Wrap(err, "puzzle: decode")
	}

	p := doc.Puzzle
	if doc.Root != nil {
		found := false
		for _, st := range doc.Root.Statuses {
			if st.DescID == d.DescID && st.Combo != nil {
				p, found = *st.Combo, true
				break
			}
		}
		if !found {
			return Puzzle{}, errors.Wrapf(ErrDifficultyNotFound, "%s (desc_id %d)", d.Name, d.DescID)
		}
	}

	if err = p.Validate(); err != nil {
		return Puzzle{}, err
	}

	return p, nil
}
