package blockstore

// Words stores 64-bit blocks in a []uint64.
type Words struct {
	words []uint64
}

// NewWords returns a zeroed Words store with the given number of blocks.
// A negative count yields an empty store.
func NewWords(blocks int) *Words {
	return &Words{words: make([]uint64, max(blocks, 0))}
}

// WordsFrom returns a Words store holding a copy of words.
func WordsFrom(words []uint64) *Words {
	w := NewWords(len(words))
	copy(w.words, words)
	return w
}

func (w *Words) BlockWidth() int { return 64 }

func (w *Words) BlockCount() int { return len(w.words) }

func (w *Words) ReadBlock(i int) uint64 {
	checkIndex(i, len(w.words))
	return w.words[i]
}

func (w *Words) WriteBlock(i int, v uint64) {
	checkIndex(i, len(w.words))
	w.words[i] = v
}

func (w *Words) Duplicate() (Store, error) {
	return WordsFrom(w.words), nil
}
