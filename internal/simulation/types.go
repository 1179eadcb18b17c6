package simulation

// Params describes one selection experiment. True values are drawn from
// N(MuX, SigmaSqX); the noisy observation adds N(MuEpsilon, SigmaSq1) noise and
// the reduced observation uses SigmaSq2 wherever the noise model applies it.
type Params struct {
	Samples   int     `json:"samples"`    // number of independent trials
	N         int     `json:"n"`          // population size
	M         int     `json:"m"`          // selection size
	MuX       float64 `json:"mu_x"`       // mean of the true values
	MuEpsilon float64 `json:"mu_epsilon"` // mean of every noise draw
	SigmaSqX  float64 `json:"sigma_sq_x"` // variance of the true values
	SigmaSq1  float64 `json:"sigma_sq_1"` // variance of the original noise
	SigmaSq2  float64 `json:"sigma_sq_2"` // variance of the reduced noise
}

// Samples holds one entry per trial, aligned by index.
type Samples struct {
	NoisyMean   []float64 // mean true value selected by the noisy observation
	CleanMean   []float64 // mean true value selected by the reduced-noise observation
	Improvement []float64 // CleanMean - NoisyMean
}

// Progress is handed to a ProgressFunc about progressReports times per run,
// at evenly spaced trials. ImprovementPct is 0 when NoisyMean is 0.
type Progress struct {
	Trial          int
	NoisyMean      float64
	CleanMean      float64
	Improvement    float64
	ImprovementPct float64
}

type ProgressFunc func(Progress)

type SequenceSummary struct {
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdErr   float64 `json:"std_err"`
}

type Summary struct {
	Noisy       SequenceSummary `json:"noisy"`
	Clean       SequenceSummary `json:"clean"`
	Improvement SequenceSummary `json:"improvement"`
}
