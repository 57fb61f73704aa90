package abi

const (
	// StdioPath opens the host's standard streams. The stream is selected by
	// the open mode: read for input, write for output, append for error.
	StdioPath = ":tt\x00"

	// FeaturesPath opens the pseudo-file that lists the supported extensions.
	FeaturesPath = ":semihosting-features\x00"

	// MaxFeatureBytes is the number of feature bytes currently defined.
	MaxFeatureBytes = 1
)

// FeatureMagic prefixes the contents of the features pseudo-file.
var FeatureMagic = [4]byte{0x53, 0x48, 0x47, 0x42}

// Feature identifies an extension by its byte and bit in the feature bitmap.
type Feature struct {
	Byte, Bit int
}

var (
	// FeatureExitExtended reports support for SYS_EXIT_EXTENDED.
	FeatureExitExtended = Feature{Byte: 0, Bit: 0}
	// FeatureStdoutStderr reports that the append mode of StdioPath opens a
	// separate error stream.
	FeatureStdoutStderr = Feature{Byte: 0, Bit: 1}
)
