// Package store persists the last observed Game per game id. Only the
// latest state is kept, every write supersedes the previous one.
package store

import (
	"context"
	"log/slog"
	"os"
	"time"

	"lottowatch-backend/lib/scrapers/nationallottery"

	"gopkg.in/yaml.v3"
)

// Repository is read once at the start of a run and fully rewritten at
// the end. Concurrent runs against the same store are not supported.
type Repository interface {
	GetAll(ctx context.Context) (map[nationallottery.GameID]nationallottery.Game, error)
	PutAll(ctx context.Context, games map[nationallottery.GameID]nationallottery.Game) error
}

// Config selects the snapshot backend. Sqlite wins when both are set.
type Config struct {
	// File is the path of the yaml snapshot file.
	File string `json:"file"`
	// Sqlite is the path of a sqlite database file.
	Sqlite string `json:"sqlite"`
}

func (c Config) Open() (Repository, error) {
	if c.Sqlite != "" {
		db, err := OpenSqlite(c.Sqlite)
		if err != nil {
			return nil, err
		}
		return NewSqliteStore(db), nil
	}
	file := c.File
	if file == "" {
		file = "games.yml"
	}
	return NewYamlStore(file), nil
}

const dateFormat = "2006-01-02"

type gameRecord struct {
	NextDrawDate string `yaml:"next_draw_date"`
	Jackpot      int64  `yaml:"jackpot"`
	RollCount    *int64 `yaml:"roll_count,omitempty"`
}

// YamlStore keeps snapshots in a human-readable yaml file.
type YamlStore struct {
	filename string
}

func NewYamlStore(filename string) YamlStore {
	return YamlStore{filename: filename}
}

// GetAll reads the snapshot file. A missing file is an empty snapshot;
// a file that fails to decode is logged and treated as empty rather
// than failing the run.
func (s YamlStore) GetAll(ctx context.Context) (map[nationallottery.GameID]nationallottery.Game, error) {
	games := map[nationallottery.GameID]nationallottery.Game{}

	contents, err := os.ReadFile(s.filename)
	if os.IsNotExist(err) {
		return games, nil
	}
	if err != nil {
		slog.WarnContext(ctx, "snapshot file unreadable, starting from empty state", "file", s.filename, "err", err)
		return games, nil
	}

	var records map[nationallottery.GameID]gameRecord
	err = yaml.Unmarshal(contents, &records)
	if err != nil {
		slog.WarnContext(ctx, "snapshot file malformed, starting from empty state", "file", s.filename, "err", err)
		return games, nil
	}

	for id, record := range records {
		date, err := time.ParseInLocation(dateFormat, record.NextDrawDate, time.UTC)
		if err != nil {
			slog.WarnContext(ctx, "snapshot entry has a bad date, dropping it", "game", id, "date", record.NextDrawDate)
			continue
		}
		games[id] = nationallottery.Game{
			NextDrawDate: date,
			Jackpot:      record.Jackpot,
			RollCount:    record.RollCount,
		}
	}
	return games, nil
}

func (s YamlStore) PutAll(ctx context.Context, games map[nationallottery.GameID]nationallottery.Game) error {
	records := make(map[nationallottery.GameID]gameRecord, len(games))
	for id, game := range games {
		records[id] = gameRecord{
			NextDrawDate: game.NextDrawDate.Format(dateFormat),
			Jackpot:      game.Jackpot,
			RollCount:    game.RollCount,
		}
	}

	contents, err := yaml.Marshal(records)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filename, contents, 0644)
}
