package histogram

const (
	// DefaultBins matches the bin count of the decoder's visualization script.
	DefaultBins = 5

	FieldSeparator = ";"
	// ProbabilityField is the 0-based index of the probability after splitting.
	ProbabilityField = 1

	MaxLineSize = 16 * 1024 * 1024

	Title  = "Histogram of Viterbi-probabilities"
	XLabel = "Probability"
	YLabel = "Density"
)
