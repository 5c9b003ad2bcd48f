// Package generator builds mazes from a small configuration: a dimension,
// fixed obstacles, a number of randomly placed obstacles, a start and a
// target.
//
// Configurations come from two sources. ParseLegacy reads the
// line-oriented text file, where every value is preceded by a free-text
// header line. DecodeHCL and LoadHCL read HCL, which allows expressions over
// caller-supplied variables (var.*) and the environment (env.*):
//
//	dimension        = 10
//	random_obstacles = var.density * 10
//	start            = [1, 1]
//	target           = [10, 10]
//	obstacle { at = [2, 3] }
//
// Generate places cells in the order obstacles, start, target, random
// obstacles; later placements overwrite earlier ones. Random obstacles only
// land on cells that are still open, so the start and target always survive.
// With a seeded *rand.Rand the output is reproducible.
package generator
