package renderer2d

import "slices"

// flush moves the batch in progress into the list, at the insertion cursor,
// and starts a new one right after it in the index buffer with the same state.
// It does nothing while the batch in progress is empty.
func (b *Batch) flush() {
	if b.current.Elements == 0 {
		return
	}
	assertf(b.insert >= 0 && b.insert <= len(b.batches), "insert cursor %d out of [0,%d]", b.insert, len(b.batches))
	assertf((b.current.Offset+b.current.Elements)*3 <= len(b.indices), "batch [%d,+%d) past %d indices", b.current.Offset, b.current.Elements, len(b.indices))

	b.batches = slices.Insert(b.batches, b.insert, b.current)
	b.insert++
	b.current.Offset += b.current.Elements
	b.current.Elements = 0
}

func (b *Batch) setLayer(layer int) {
	if layer == b.current.Layer {
		return
	}
	b.flush()
	b.current.Layer = layer
	b.insert = b.layerCursor(layer)
}

// layerCursor returns the index of the first batch drawn after layer: the
// list stays sorted ascending and new batches go after their layer's peers.
// Linear, since layer changes are rare and a frame holds few batches.
func (b *Batch) layerCursor(layer int) int {
	for i := range b.batches {
		if b.batches[i].Layer > layer {
			return i
		}
	}
	return len(b.batches)
}
