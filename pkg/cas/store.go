package cas

import (
	"bytes"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ipfs/go-cid"
	"github.com/pion/logging"
)

// DefaultCapacity is the number of blocks a Store keeps when Config.Capacity is zero.
const DefaultCapacity = 1024

// Config configures a Store.
type Config struct {
	// Capacity is the maximum number of blocks held. The least recently
	// used block is evicted when a new one would exceed it.
	// Default: DefaultCapacity
	Capacity int

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// Store is an in-memory block store addressed by content. Storing the same
// bytes twice keeps one copy. It is safe for concurrent use.
type Store struct {
	blocks *lru.Cache[cid.Cid, []byte]
	log    logging.LeveledLogger
}

// NewStore creates a Store with the given configuration.
func NewStore(config Config) (*Store, error) {
	if config.Capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, config.Capacity)
	}
	if config.Capacity == 0 {
		config.Capacity = DefaultCapacity
	}

	s := &Store{}
	if config.LoggerFactory != nil {
		s.log = config.LoggerFactory.NewLogger("cas")
	}

	blocks, err := lru.NewWithEvict(config.Capacity, s.onEvict)
	if err != nil {
		return nil, fmt.Errorf("create block cache: %w", err)
	}
	s.blocks = blocks
	return s, nil
}

// Put stores data and returns its CID. Putting bytes that are already
// stored marks them as recently used.
func (s *Store) Put(data []byte) (cid.Cid, error) {
	c, err := CID(data)
	if err != nil {
		return cid.Undef, err
	}

	if found, _ := s.blocks.ContainsOrAdd(c, bytes.Clone(data)); found {
		// A repeated put counts as a use. Re-add if a concurrent put
		// evicted the block in between.
		if _, ok := s.blocks.Get(c); !ok {
			s.blocks.Add(c, bytes.Clone(data))
		}
		if s.log != nil {
			s.log.Tracef("duplicate block %s", c)
		}
		return c, nil
	}
	if s.log != nil {
		s.log.Debugf("stored block %s (%d bytes)", c, len(data))
	}
	return c, nil
}

// Get returns a copy of the block stored under c. The block is re-hashed
// before it is returned.
func (s *Store) Get(c cid.Cid) ([]byte, error) {
	data, ok := s.blocks.Get(c)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, c)
	}
	if err := Verify(c, data); err != nil {
		if s.log != nil {
			s.log.Errorf("stored block failed verification: %v", err)
		}
		return nil, err
	}
	return bytes.Clone(data), nil
}

// Has reports whether a block is stored under c.
func (s *Store) Has(c cid.Cid) bool {
	return s.blocks.Contains(c)
}

// Remove deletes the block stored under c and reports whether it was present.
func (s *Store) Remove(c cid.Cid) bool {
	return s.blocks.Remove(c)
}

// Len returns the number of stored blocks.
func (s *Store) Len() int {
	return s.blocks.Len()
}

func (s *Store) onEvict(c cid.Cid, data []byte) {
	if s.log != nil {
		s.log.Debugf("evicted block %s (%d bytes)", c, len(data))
	}
}
