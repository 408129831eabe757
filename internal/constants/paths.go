// Package constants contains file names, CSV fields and environment variable names
// shared across underwrite.
package constants

const (
	// AppName is used for the XDG data directory and the binary name.
	AppName = "underwrite"

	// ConfigFilename is the default config file looked up in the working directory.
	ConfigFilename = "underwrite.yml"

	// LogFilename is the rotated log file inside the XDG data directory.
	LogFilename = "underwrite.log"

	// BatchFilePattern formats a 1-based batch number into a batch file name.
	BatchFilePattern = "batch_%02d.csv"

	// DefaultDataDir holds generated batches.
	DefaultDataDir = "data"

	// DefaultOutputDir holds the decision results file.
	DefaultOutputDir = "outputs"

	// DefaultOutputFilename is the decision results file name.
	DefaultOutputFilename = "decision_results.csv"

	// TempSuffix is appended to output files while they are being written.
	TempSuffix = ".tmp"
)
