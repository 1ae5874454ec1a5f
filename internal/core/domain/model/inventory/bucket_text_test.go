package inventory_test

import (
	"testing"

	"distribution/internal/core/domain/model/inventory"
	"distribution/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBucket(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"plain integer", "42", 42},
		{"zero", "0", 0},
		{"surrounding whitespace", "  17 ", 17},
		{"empty cell reads as zero", "", 0},
		{"blank cell reads as zero", "   ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := inventory.ParseBucket(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBucket_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"free text", "n/a"},
		{"decimal", "3.5"},
		{"negative", "-5"},
		{"negative with whitespace", " -1 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := inventory.ParseBucket(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestFormatBucket_RoundTrip(t *testing.T) {
	got, err := inventory.ParseBucket(inventory.FormatBucket(128))
	require.NoError(t, err)
	assert.Equal(t, 128, got)
}
