package encodepacked

import (
	"testing"
)

func TestDefaultEncoderConfig(t *testing.T) {
	config := defaultEncoderConfig()

	t.Run("no size limit by default", func(t *testing.T) {
		if config.maxSize != 0 {
			t.Errorf("Expected maxSize to be 0, got %d", config.maxSize)
		}
	})

	t.Run("truncation disabled by default", func(t *testing.T) {
		if config.truncate {
			t.Error("Expected truncate to be false by default")
		}
	})
}

func TestWithMaxSize(t *testing.T) {
	t.Run("sets custom max size", func(t *testing.T) {
		config := defaultEncoderConfig()
		WithMaxSize(1024)(config)

		if config.maxSize != 1024 {
			t.Errorf("Expected maxSize to be 1024, got %d", config.maxSize)
		}
	})

	t.Run("negative means unlimited", func(t *testing.T) {
		config := defaultEncoderConfig()
		WithMaxSize(-5)(config)

		if config.maxSize != 0 {
			t.Errorf("Expected maxSize to be 0, got %d", config.maxSize)
		}
	})
}

func TestWithTruncation(t *testing.T) {
	t.Run("enables truncation", func(t *testing.T) {
		config := defaultEncoderConfig()
		WithTruncation(true)(config)

		if !config.truncate {
			t.Error("Expected truncate to be true")
		}
	})

	t.Run("disables truncation", func(t *testing.T) {
		config := defaultEncoderConfig()
		config.truncate = true
		WithTruncation(false)(config)

		if config.truncate {
			t.Error("Expected truncate to be false")
		}
	})
}

func TestNewEncoderAppliesOptions(t *testing.T) {
	encoder := NewEncoder(WithMaxSize(64), WithTruncation(true))

	if encoder.config.maxSize != 64 {
		t.Errorf("Expected maxSize 64, got %d", encoder.config.maxSize)
	}
	if !encoder.config.truncate {
		t.Error("Expected truncate to be true")
	}
}

func TestOptionsLastWins(t *testing.T) {
	encoder := NewEncoder(WithMaxSize(10), WithMaxSize(20))

	if encoder.config.maxSize != 20 {
		t.Errorf("Expected maxSize 20, got %d", encoder.config.maxSize)
	}
}
