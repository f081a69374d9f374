package sim

// Scoring holds the fixed score deltas.
type Scoring struct {
	Pellet      int
	PowerPellet int
	Ghosts      []int // indexed by ghosts eaten in the current frightened window
}

// GhostSpec describes one ghost's identity and fixed cells.
type GhostSpec struct {
	Name    string
	ID      Identity
	Start   Coord
	Scatter Coord
}

// Config holds every tunable of a simulation. Times are in seconds.
type Config struct {
	PacmanStart Coord
	Ghosts      []GhostSpec
	GhostHome   Coord // where eaten ghosts return
	FruitCell   Coord

	Lives      int
	StartLevel int

	PacmanSpeed    float64 // base movement interval
	PacmanMinSpeed float64
	GhostSpeed     float64
	GhostMinSpeed  float64
	LevelStep      float64 // interval reduction per level
	FreezeSpeed    bool    // compute intervals from StartLevel only

	FrightenedBase float64
	ResumeDelay    float64
	FirstMode      GhostMode
	ModeSchedule   []float64

	Scoring         Scoring
	FruitThresholds []int // consumed counts that spawn a fruit
	FruitDuration   float64

	ShyThreshold int
	AmbushAhead  int
	FlankAhead   int
}

// DefaultConfig returns the settings for the embedded 28x31 classic map.
func DefaultConfig() Config {
	return Config{
		PacmanStart: C(13, 23),
		Ghosts: []GhostSpec{
			{Name: "Blinky", ID: Blinky, Start: C(13, 11), Scatter: C(26, 1)},
			{Name: "Pinky", ID: Pinky, Start: C(13, 14), Scatter: C(1, 1)},
			{Name: "Inky", ID: Inky, Start: C(11, 14), Scatter: C(26, 29)},
			{Name: "Clyde", ID: Clyde, Start: C(15, 14), Scatter: C(1, 29)},
		},
		GhostHome: C(13, 14),
		FruitCell: C(13, 17),

		Lives:      3,
		StartLevel: 1,

		PacmanSpeed:    0.20,
		PacmanMinSpeed: 0.10,
		GhostSpeed:     0.25,
		GhostMinSpeed:  0.12,
		LevelStep:      0.03,

		FrightenedBase: 7,
		ResumeDelay:    2,
		FirstMode:      ModeScatter,
		ModeSchedule:   []float64{7, 20, 7, 20, 5, 20, 5},

		Scoring: Scoring{
			Pellet:      10,
			PowerPellet: 50,
			Ghosts:      []int{200, 400, 800, 1600},
		},
		FruitThresholds: []int{70, 170},
		FruitDuration:   9.5,

		ShyThreshold: 8,
		AmbushAhead:  4,
		FlankAhead:   2,
	}
}
