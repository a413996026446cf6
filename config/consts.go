package config

const (
	DefaultConfigFile = ".viterbiplot.yaml"
	DefaultEnvFile    = ".env"
	EnvPrefix         = "VITERBIPLOT_"

	DefaultBins        = 5
	DefaultWidth       = 6.0
	DefaultHeight      = 4.0
	DefaultImageFormat = "png"
	DefaultTransform   = "none"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
)
