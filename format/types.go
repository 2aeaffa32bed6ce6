package format

import "strings"

type (
	TableFormat     uint8
	CompressionType uint8
	AngleUnit       uint8
)

const (
	TableCSV   TableFormat = 0x1 // TableCSV represents comma separated values.
	TableLaTeX TableFormat = 0x2 // TableLaTeX represents a LaTeX tabular block.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	AngleRadians AngleUnit = 0x1 // AngleRadians represents angles measured in radians.
	AngleDegrees AngleUnit = 0x2 // AngleDegrees represents angles measured in degrees.
)

func (f TableFormat) String() string {
	switch f {
	case TableCSV:
		return "CSV"
	case TableLaTeX:
		return "LaTeX"
	default:
		return "Unknown"
	}
}

// Extension returns the file extension, including the dot, required for the format.
func (f TableFormat) Extension() string {
	switch f {
	case TableCSV:
		return ".csv"
	case TableLaTeX:
		return ".tex"
	default:
		return ""
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Suffix returns the file suffix appended to compressed files, empty for CompressionNone.
func (c CompressionType) Suffix() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// CompressionFromPath detects the compression type from the file suffix.
// Paths without a known suffix are reported as CompressionNone.
func CompressionFromPath(path string) CompressionType {
	lower := strings.ToLower(path)
	for _, c := range []CompressionType{CompressionZstd, CompressionS2, CompressionLZ4} {
		if strings.HasSuffix(lower, c.Suffix()) {
			return c
		}
	}

	return CompressionNone
}

// TrimCompression strips a known compression suffix from path.
func TrimCompression(path string) string {
	c := CompressionFromPath(path)
	if c == CompressionNone {
		return path
	}

	return path[:len(path)-len(c.Suffix())]
}

// ParseCompressionType maps a configuration name ("none", "zstd", "s2",
// "lz4") to a CompressionType. It returns false for unknown names.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, true
	case "zstd", "zst":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

func (u AngleUnit) String() string {
	switch u {
	case AngleRadians:
		return "radians"
	case AngleDegrees:
		return "degrees"
	default:
		return "unknown"
	}
}

// ParseAngleUnit maps a configuration name to an AngleUnit.
// It returns false for unknown names.
func ParseAngleUnit(name string) (AngleUnit, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rad", "radian", "radians":
		return AngleRadians, true
	case "deg", "degree", "degrees":
		return AngleDegrees, true
	default:
		return 0, false
	}
}
