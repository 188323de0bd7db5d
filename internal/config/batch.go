package config

// BatchConfig holds settings for classifying a file of positions.
type BatchConfig struct {
	// Path of the input file, one FEN per line; empty disables batch mode
	Path string

	// Workers is the number of concurrent classifiers (0 means NumCPU)
	Workers int

	// SuppressDuplicates drops positions already seen earlier in the file
	SuppressDuplicates bool
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{}
}
