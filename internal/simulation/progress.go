package simulation

import (
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog/log"
)

// LogProgress reports each progress event at info level.
func LogProgress() ProgressFunc {
	return func(p Progress) {
		log.Info().
			Int("trial", p.Trial).
			Float64("noisy", round(p.NoisyMean, 4)).
			Float64("clean", round(p.CleanMean, 4)).
			Float64("improvement", round(p.Improvement, 4)).
			Float64("improvement_pct", round(p.ImprovementPct, 3)).
			Msg("selection trial")
	}
}

// WriteProgress writes one line per progress event to w.
func WriteProgress(w io.Writer) ProgressFunc {
	return func(p Progress) {
		fmt.Fprintf(w, "Noisy: %.4f, Clean: %.4f. Improvement: %.4f (%.3f%%)\n",
			p.NoisyMean, p.CleanMean, p.Improvement, p.ImprovementPct)
	}
}

func round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
