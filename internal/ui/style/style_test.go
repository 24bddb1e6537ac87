package style

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinnerFrame_Wraps(t *testing.T) {
	t.Parallel()
	assert.Equal(t, SpinnerFrames[0], SpinnerFrame(0))
	assert.Equal(t, SpinnerFrames[1], SpinnerFrame(len(SpinnerFrames)+1))
	assert.Equal(t, SpinnerFrames[2], SpinnerFrame(-2))
}

func TestProgressBar_Cells(t *testing.T) {
	t.Parallel()
	bar := ProgressBar(0.5, 10)
	assert.Equal(t, 5, strings.Count(bar, "█"))
	assert.Equal(t, 5, strings.Count(bar, "░"))

	assert.Equal(t, 10, strings.Count(ProgressBar(7, 10), "█"))
	assert.Equal(t, 10, strings.Count(ProgressBar(-1, 10), "░"))
}
