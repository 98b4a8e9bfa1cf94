package cryptorand

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
)

// Source is a math/rand source that reads from crypto/rand.
// It has no seed, so every engine gets its own unpredictable
// fleet layout.
type Source struct{}

var _ mrand.Source64 = Source{}

func NewSource() Source {
	return Source{}
}

// Ready to use *rand.Rand backed by Source
func New() *mrand.Rand {
	return mrand.New(NewSource())
}

func (Source) Uint64() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(buf[:])
}

func (s Source) Int63() int64 {
	return int64(s.Uint64() & (1<<63 - 1))
}

func (Source) Seed(int64) {}
