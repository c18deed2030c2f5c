package domain

// Result holds the outcome of a fuzzy score computation.
type Result struct {
	Name         string
	Algorithm    Algorithm
	Score        int
	Raw          float64
	Cutoff       int
	Passed       bool
	FirstLength  int
	SecondLength int
	LengthRatio  float64
	Details      map[string]interface{}
}
