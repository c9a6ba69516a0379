package nationallottery

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/codes"
)

// Source returns the raw games page. Implemented by HttpSource in
// production and by fixtures in tests.
type Source interface {
	Get(ctx context.Context) (string, error)
}

type Fetcher struct {
	source  Source
	tracked []GameID
}

// NewFetcher builds a fetcher over the given page source. An empty
// tracked list means every known game.
func NewFetcher(source Source, tracked []GameID) Fetcher {
	if len(tracked) == 0 {
		tracked = TrackedGames()
	}
	return Fetcher{
		source:  source,
		tracked: tracked,
	}
}

// Fetch retrieves the games page and builds a Game per tracked id. An id
// maps to nil when the page had no usable data for it, which is not an
// error: only a failure to retrieve the page itself fails the call.
func (f Fetcher) Fetch(ctx context.Context) (map[GameID]*Game, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()

	content, err := f.source.Get(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to retrieve games page")
		return nil, err
	}

	fieldSets, err := ParseGamesPage(ctx, content)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse games page")
		return nil, err
	}

	games := make(map[GameID]*Game, len(f.tracked))
	for _, id := range f.tracked {
		games[id] = buildGame(ctx, id, fieldSets[id])
	}
	return games, nil
}

func buildGame(ctx context.Context, id GameID, fields RawFieldSet) *Game {
	if fields.DrawDate == nil {
		slog.DebugContext(ctx, "no draw date, treating game as unknown", "game", id)
		return nil
	}
	if fields.Jackpot == nil || !fields.Jackpot.Ok {
		slog.DebugContext(ctx, "no resolved jackpot, treating game as unknown", "game", id)
		return nil
	}
	return &Game{
		NextDrawDate: *fields.DrawDate,
		Jackpot:      fields.Jackpot.Units,
		RollCount:    fields.RollCount,
	}
}
