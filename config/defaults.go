package config

import "github.com/spf13/viper"

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("solver.max_iterations", 10)
	v.SetDefault("solver.lexicographic", true)

	v.SetDefault("puzzle.path", "player.json")
	v.SetDefault("puzzle.difficulty", "unm")

	v.SetDefault("catalog.path", "crew.yaml")
	v.SetDefault("translation.path", "") // raw trait ids

	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}
