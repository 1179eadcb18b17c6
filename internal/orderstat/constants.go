package orderstat

// PlottingPosition is the continuity correction used when approximating the
// expected r-th order statistic of a normal sample by Φ⁻¹((r-α)/(N-2α+1)).
const PlottingPosition = 0.4
