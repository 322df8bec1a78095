package system

// ChunkSize keeps each delete batch under the 500-write ceiling.
const ChunkSize = 490

// ChunkIDs splits ids into consecutive groups of at most size.
func ChunkIDs(ids []string, size int) [][]string {
	if size <= 0 {
		size = ChunkSize
	}

	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
