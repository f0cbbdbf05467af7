package report

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/traitchain/trait"
)

// ErrTranslation indicates an unreadable translation file.
var ErrTranslation = errors.New("report: cannot load trait translation")

// Translator maps trait ids to display names. The zero value and a nil
// *Translator both print ids unchanged.
type Translator struct {
	names map[trait.Trait]string
}

type translationFile struct {
	TraitNames map[string]string `json:"trait_names"`
}

// NewTranslator wraps an id → name table.
func NewTranslator(names map[string]string) *Translator {
	t := &Translator{names: make(map[trait.Trait]string, len(names))}
	for id, name := range names {
		t.names[trait.Trait(id)] = name
	}

	return t
}

// LoadTranslation reads a {"trait_names": {...}} JSON document.
func LoadTranslation(path string) (*Translator, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "read %s", path), ErrTranslation)
	}
	var f translationFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "decode %s", path), ErrTranslation)
	}
	if f.TraitNames == nil {
		return nil, errors.WithHint(
			errors.Wrapf(ErrTranslation, "%s has no trait_names object", path),
			"expected a JSON document shaped like {\"trait_names\": {\"id\": \"Name\"}}",
		)
	}

	return NewTranslator(f.TraitNames), nil
}

// Name returns the display name of t, or t itself when unknown.
func (tr *Translator) Name(t trait.Trait) string {
	if tr != nil {
		if name, ok := tr.names[t]; ok {
			return name
		}
	}

	return string(t)
}

// Names maps Name over ts.
func (tr *Translator) Names(ts []trait.Trait) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = tr.Name(t)
	}

	return out
}
