package format

type (
	Scheme          uint8
	CompressionType uint8
)

const (
	SchemeUnary            Scheme = 0x1 // SchemeUnary represents the unary code.
	SchemeGeneralizedUnary Scheme = 0x2 // SchemeGeneralizedUnary represents the generalized unary (start=3, step=2) code.
	SchemeEliasGamma       Scheme = 0x3 // SchemeEliasGamma represents the Elias gamma code.
	SchemeEliasDelta       Scheme = 0x4 // SchemeEliasDelta represents the Elias delta code.
	SchemeFibonacci        Scheme = 0x5 // SchemeFibonacci represents the Fibonacci (Zeckendorf) code.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (s Scheme) String() string {
	switch s {
	case SchemeUnary:
		return "Unary"
	case SchemeGeneralizedUnary:
		return "GeneralizedUnary"
	case SchemeEliasGamma:
		return "EliasGamma"
	case SchemeEliasDelta:
		return "EliasDelta"
	case SchemeFibonacci:
		return "Fibonacci"
	default:
		return "Unknown"
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
