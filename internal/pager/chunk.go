// Package pager bridges two incompatible pagination models: Telegram's
// offset-based inline result pages and remote APIs that paginate with
// next-page links. Remote pages are fetched lazily, regrouped into
// fixed-size chunks, and kept resident so a chunk index can be served
// without re-fetching.
package pager

// Chunk splits items into consecutive chunks of chunkSize elements.
// Every chunk except possibly the last has exactly chunkSize elements;
// a shorter final chunk is kept, an empty one is never produced. The
// chunks share backing storage with items. Chunk panics if chunkSize is
// less than 1.
func Chunk[T any](items []T, chunkSize int) [][]T {
	if chunkSize < 1 {
		panic("pager: chunk size must be at least 1")
	}

	if len(items) == 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(items)+chunkSize-1)/chunkSize)
	for start := 0; start < len(items); start += chunkSize {
		end := start + chunkSize
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}

	return chunks
}
