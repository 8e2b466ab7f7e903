package encodepacked

// EncoderOption configures an Encoder.
type EncoderOption func(*encoderConfig)

// encoderConfig holds configuration for an Encoder.
type encoderConfig struct {
	maxSize  int
	truncate bool
}

// defaultEncoderConfig returns the default encoder configuration.
func defaultEncoderConfig() *encoderConfig {
	return &encoderConfig{
		maxSize:  0,
		truncate: false,
	}
}

// WithMaxSize bounds the total packed output in bytes.
// Zero (the default) means no limit. Negative values are treated as zero.
func WithMaxSize(max int) EncoderOption {
	return func(c *encoderConfig) {
		if max < 0 {
			max = 0
		}
		c.maxSize = max
	}
}

// WithTruncation controls how NumberWithShift handles values wider than
// their width. When disabled (default), such values fail with
// ErrValueTooLarge. When enabled, the high-order bytes are dropped silently.
func WithTruncation(enabled bool) EncoderOption {
	return func(c *encoderConfig) {
		c.truncate = enabled
	}
}
