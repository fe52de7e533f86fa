package service

// PointsPerLevel is how many accumulated points advance the student one level.
const PointsPerLevel = 100

// MaxLevel caps the level regardless of point total.
const MaxLevel = 100

type LevelService interface {
	CalculateLevel(totalPoints int) int
}

type levelServiceImpl struct{}

func NewLevelService() LevelService {
	return &levelServiceImpl{}
}

// CalculateLevel maps an accumulated point total to a level: level 1 at zero
// points, one level per PointsPerLevel, capped at MaxLevel. Callers guarantee
// a non-negative total.
func (s *levelServiceImpl) CalculateLevel(totalPoints int) int {
	level := totalPoints/PointsPerLevel + 1
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
