package chart

import (
	"bytes"
	"testing"

	"sentimentservice/internal/domain"
	"sentimentservice/internal/testutil"
)

// TestPieRenderer_Render tests PNG output for a non-empty distribution
func TestPieRenderer_Render(t *testing.T) {
	renderer := NewPieRenderer()

	png, err := renderer.Render(domain.ReviewStats{
		Total:         4,
		PositiveCount: 3,
		NegativeCount: 1,
		PositivePct:   75,
		NegativePct:   25,
	})

	testutil.AssertNoError(t, err, "render")
	testutil.AssertTrue(t, len(png) > 0, "non-empty output")
	testutil.AssertTrue(t, bytes.HasPrefix(png, []byte("\x89PNG")), "PNG signature")
}

// TestPieRenderer_Render_Empty tests that an empty history cannot be charted
func TestPieRenderer_Render_Empty(t *testing.T) {
	renderer := NewPieRenderer()

	_, err := renderer.Render(domain.ReviewStats{})
	testutil.AssertError(t, err, "zero total")
}

// TestPieRenderer_Render_SingleSlice tests a one-sided distribution
func TestPieRenderer_Render_SingleSlice(t *testing.T) {
	renderer := NewPieRenderer()

	png, err := renderer.Render(domain.ReviewStats{
		Total:         2,
		PositiveCount: 2,
		PositivePct:   100,
	})

	testutil.AssertNoError(t, err, "render")
	testutil.AssertTrue(t, len(png) > 0, "non-empty output")
}
