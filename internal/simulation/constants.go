package simulation

// progressReports is the approximate number of progress callbacks per run.
const progressReports = 20

// DefaultParams mirrors the defaults of the SIM_* environment configuration.
func DefaultParams() Params {
	return Params{
		Samples:   10000,
		N:         100,
		M:         10,
		MuX:       0,
		MuEpsilon: 0,
		SigmaSqX:  1,
		SigmaSq1:  1,
		SigmaSq2:  0.01,
	}
}
