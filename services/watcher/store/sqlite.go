package store

import (
	"context"
	"database/sql"
	"os"
	"time"

	"lottowatch-backend/lib/scrapers/nationallottery"

	_ "embed"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var Schema string

// OpenSqlite opens (creating if needed) a sqlite snapshot database and
// applies the schema.
func OpenSqlite(path string) (*sql.DB, error) {
	_, statErr := os.Stat(path)
	if os.IsNotExist(statErr) {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		f.Close()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(Schema)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// SqliteStore keeps snapshots in a single-table sqlite database.
type SqliteStore struct {
	db *sql.DB
}

func NewSqliteStore(db *sql.DB) SqliteStore {
	return SqliteStore{db: db}
}

func (s SqliteStore) GetAll(ctx context.Context) (map[nationallottery.GameID]nationallottery.Game, error) {
	rows, err := s.db.QueryContext(
		ctx,
		"select game_id, next_draw_date, jackpot, roll_count from game_snapshot",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := map[nationallottery.GameID]nationallottery.Game{}
	for rows.Next() {
		var id string
		var rawDate string
		var jackpot int64
		var rollCount sql.NullInt64
		err := rows.Scan(&id, &rawDate, &jackpot, &rollCount)
		if err != nil {
			return nil, err
		}

		date, err := time.ParseInLocation(dateFormat, rawDate, time.UTC)
		if err != nil {
			return nil, err
		}

		game := nationallottery.Game{
			NextDrawDate: date,
			Jackpot:      jackpot,
		}
		if rollCount.Valid {
			game.RollCount = &rollCount.Int64
		}
		games[nationallottery.GameID(id)] = game
	}
	return games, rows.Err()
}

func (s SqliteStore) PutAll(ctx context.Context, games map[nationallottery.GameID]nationallottery.Game) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, "delete from game_snapshot")
	if err != nil {
		return err
	}
	for id, game := range games {
		var rollCount sql.NullInt64
		if game.RollCount != nil {
			rollCount = sql.NullInt64{Int64: *game.RollCount, Valid: true}
		}
		_, err = tx.ExecContext(
			ctx,
			"insert into game_snapshot (game_id, next_draw_date, jackpot, roll_count) values (?, ?, ?, ?)",
			string(id),
			game.NextDrawDate.Format(dateFormat),
			game.Jackpot,
			rollCount,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
