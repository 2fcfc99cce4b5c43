package main

import (
	"testing"

	"github.com/hubastard/batch2d/engine/core"
	"github.com/hubastard/batch2d/engine/geom"
	"github.com/hubastard/batch2d/engine/gfx/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneFrame(t *testing.T) {
	dev := record.New(640, 480)
	font, err := loadFont(dev, "", 16)
	require.NoError(t, err)
	l, err := NewLayer2D(dev, font, 640, 480)
	require.NoError(t, err)

	l.Frame()

	st := l.batch.Stats()
	assert.Zero(t, st.Skipped)
	assert.Equal(t, st.Batches, st.DrawCalls)
	assert.Greater(t, st.DrawCalls, 4)

	var canvas, scissor, additive int
	for _, c := range dev.Calls {
		if c.Target == l.canvas {
			canvas++
		}
		if c.HasScissor {
			scissor++
		}
		if c.Blend == core.BlendAdditive {
			additive++
		}
	}
	assert.Positive(t, canvas)
	assert.Equal(t, 1, scissor)
	assert.Equal(t, 1, additive)
}

func TestDebugOverlay(t *testing.T) {
	dev := record.New(640, 480)
	font, err := loadFont(dev, "", 16)
	require.NoError(t, err)
	scene, err := NewLayer2D(dev, font, 640, 480)
	require.NoError(t, err)
	scene.Frame()

	l := NewLayerDebug(dev, font, scene.batch)
	l.collect()
	assert.Contains(t, l.lines, "Batch")

	l.draw(geom.V2(16, 16))
	assert.False(t, l.batch.Empty())
}
