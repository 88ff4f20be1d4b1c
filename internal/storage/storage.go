package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const keyStats = "stats"

// Outcome is how a finished game ended.
type Outcome string

const (
	OutcomeWhiteWins Outcome = "white"
	OutcomeBlackWins Outcome = "black"
	OutcomeDraw      Outcome = "draw"
)

// Stats is the running tally of finished games.
type Stats struct {
	GamesPlayed int `json:"gamesPlayed"`
	WhiteWins   int `json:"whiteWins"`
	BlackWins   int `json:"blackWins"`
	Draws       int `json:"draws"`
}

// Store wraps BadgerDB for the results tally
type Store struct {
	db *badger.DB
}

// Open opens the store in dir. An empty dir keeps everything in memory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open results store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Stats loads the tally, returns zero counts if nothing was recorded yet
func (s *Store) Stats() (Stats, error) {
	var stats Stats
	err := s.db.View(func(txn *badger.Txn) error {
		return loadStats(txn, &stats)
	})
	return stats, err
}

// RecordResult adds one finished game to the tally.
func (s *Store) RecordResult(outcome Outcome) error {
	return s.db.Update(func(txn *badger.Txn) error {
		var stats Stats
		if err := loadStats(txn, &stats); err != nil {
			return err
		}

		stats.GamesPlayed++
		switch outcome {
		case OutcomeWhiteWins:
			stats.WhiteWins++
		case OutcomeBlackWins:
			stats.BlackWins++
		case OutcomeDraw:
			stats.Draws++
		default:
			return fmt.Errorf("unknown outcome %q", outcome)
		}

		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return txn.Set([]byte(keyStats), data)
	})
}

func loadStats(txn *badger.Txn, stats *Stats) error {
	item, err := txn.Get([]byte(keyStats))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, stats)
	})
}
