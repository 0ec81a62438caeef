// Package idgen produces todo identifiers of the form "T-<random 64-bit value>".
package idgen

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"sync"

	"todo/shared/constant"
)

type Generator interface {
	Generate() (string, error)
}

type randomGenerator struct {
	mu     sync.Mutex
	source io.Reader
	prefix string
}

// New returns a Generator backed by crypto/rand.
func New() Generator {
	return NewWithSource(rand.Reader)
}

// NewWithSource returns a Generator reading its randomness from source. Reads are
// serialized, so source itself does not need to be safe for concurrent use.
func NewWithSource(source io.Reader) Generator {
	return &randomGenerator{
		source: source,
		prefix: constant.TodoIDPrefix + constant.TodoIDSeparator,
	}
}

func (g *randomGenerator) Generate() (string, error) {
	var buf [8]byte

	g.mu.Lock()
	_, err := io.ReadFull(g.source, buf[:])
	g.mu.Unlock()

	if err != nil {
		return constant.Empty, fmt.Errorf("failed to read random source: %w", err)
	}

	return g.prefix + strconv.FormatUint(binary.BigEndian.Uint64(buf[:]), 10), nil
}
