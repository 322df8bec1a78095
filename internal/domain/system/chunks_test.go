package system

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("id-%d", i)
	}
	return out
}

func TestChunkIDs(t *testing.T) {
	chunks := ChunkIDs(ids(1000), ChunkSize)

	assert.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 490)
	assert.Len(t, chunks[1], 490)
	assert.Len(t, chunks[2], 20)
	assert.Equal(t, "id-490", chunks[1][0])
}

func TestChunkIDs_Edges(t *testing.T) {
	assert.Empty(t, ChunkIDs(nil, ChunkSize))
	assert.Len(t, ChunkIDs(ids(490), ChunkSize), 1)
	assert.Len(t, ChunkIDs(ids(491), 0), 2)
}
