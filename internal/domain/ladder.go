package domain

// TotalLevels is the number of questions between the first level and the top prize.
const TotalLevels = 15

var prizes = [TotalLevels]int{
	100,
	200,
	300,
	500,
	1_000,
	2_000,
	4_000,
	8_000,
	16_000,
	32_000,
	64_000,
	125_000,
	250_000,
	500_000,
	1_000_000,
}

var checkpoints = [...]int{5, 10, 15}

// Rung is one row of the prize ladder.
type Rung struct {
	Level      int
	Prize      int
	Checkpoint bool
}

// PrizeFor returns the prize for level, or 0 outside [1, TotalLevels].
func PrizeFor(level int) int {
	if level < 1 || level > TotalLevels {
		return 0
	}
	return prizes[level-1]
}

// IsCheckpoint reports whether level is a guaranteed-prize level.
func IsCheckpoint(level int) bool {
	for _, cp := range checkpoints {
		if cp == level {
			return true
		}
	}
	return false
}

// CheckpointPrizeFor returns PrizeFor(level) at checkpoints and 0 elsewhere.
func CheckpointPrizeFor(level int) int {
	if IsCheckpoint(level) {
		return PrizeFor(level)
	}
	return 0
}

// HighestCheckpointPrizeReached returns the prize of the greatest checkpoint <= level.
func HighestCheckpointPrizeReached(level int) int {
	highest := 0
	for _, cp := range checkpoints {
		if cp > level {
			break
		}
		highest = cp
	}
	return PrizeFor(highest)
}

// Ladder returns the rungs from level 1 upward.
func Ladder() []Rung {
	rungs := make([]Rung, 0, TotalLevels)
	for level := 1; level <= TotalLevels; level++ {
		rungs = append(rungs, Rung{
			Level:      level,
			Prize:      PrizeFor(level),
			Checkpoint: IsCheckpoint(level),
		})
	}
	return rungs
}
