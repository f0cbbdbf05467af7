// Package puzzle describes a trait-chain puzzle as it arrives from disk and
// turns the raw document into a validated Puzzle value.
//
// Two document shapes are accepted (JSON or YAML, chosen by file extension):
//
//   - a bare puzzle: {"traits": [...], "nodes": [...]}
//   - a player export: {"fleet_boss_battles_root": {"statuses": [{"desc_id": 6, "combo": {...}}]}}
//     where the combo whose desc_id matches the requested Difficulty is used.
//
// Hidden slots that are still unresolved carry the placeholder "?". A node may
// carry "unlocked_crew_archetype_id" when the crew that solved it is known.
//
// Errors:
//
//	ErrInvalidPuzzle       - the decoded document fails structural validation.
//	ErrDifficultyNotFound  - a player export holds no combo for the difficulty.
//	ErrUnknownDifficulty   - a difficulty name is not in the table.
//	ErrUnsupportedFormat   - the file extension is neither JSON nor YAML.
package puzzle
