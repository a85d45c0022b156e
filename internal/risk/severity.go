package risk

// Two severity vocabularies over the same categories: the float weights feed
// the normalized risk surface, the integer points feed the absolute severity
// score. They are deliberately decoupled scales.

// severityWeights drives the normalized risk aggregation
var severityWeights = map[string]float64{
	"Assault":                           1.0,
	"Robbery":                           0.9,
	"Break and Enter Residential/Other": 0.7,
	"Break and Enter Commercial":        0.6,
	"Theft of Vehicle":                  0.4,
	"Theft from Auto":                   0.3,
	"Theft of Bicycle":                  0.25,
	"Mischief":                          0.2,
}

// defaultWeight keeps unmapped categories contributing a little, never zero
const defaultWeight = 0.1

// severityPoints drives the integer severity sum
var severityPoints = map[string]int{
	"Assault":                           5,
	"Robbery":                           4,
	"Break and Enter Residential/Other": 3,
	"Break and Enter Commercial":        3,
	"Theft of Vehicle":                  2,
	"Theft from Auto":                   1,
	"Theft of Bicycle":                  1,
	"Mischief":                          1,
}

const defaultPoints = 1

// WeightFor returns the float severity weight for a category
func WeightFor(category string) float64 {
	if w, ok := severityWeights[category]; ok {
		return w
	}
	return defaultWeight
}

// PointsFor returns the integer severity points for a category
func PointsFor(category string) int {
	if p, ok := severityPoints[category]; ok {
		return p
	}
	return defaultPoints
}
