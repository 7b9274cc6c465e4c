package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDrawingKey(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"arch-circular-single.png", "arch-circular-single"},
		{"BACKDROP-FAIRY-LIGHTS.PNG", "backdrop-fairy-lights"},
		{"stage-carpet.jpeg", "stage-carpet"},
		{"  sofa-cream-tufted.jpg  ", "sofa-cream-tufted"},
		{"riser2.png", "riser2"},
	}

	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			key, err := ParseDrawingKey(tc.filename)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, key)
		})
	}
}

func TestParseDrawingKeyRejectsInvalidNames(t *testing.T) {
	invalid := []string{
		"",
		".png",
		"arch_circular.png",
		"arch circular.png",
		"-leading-dash.png",
		"trailing-dash-.png",
	}

	for _, filename := range invalid {
		t.Run(filename, func(t *testing.T) {
			_, err := ParseDrawingKey(filename)
			assert.Error(t, err)
		})
	}
}
