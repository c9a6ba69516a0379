// Package watcher runs the fetch, compare, persist, notify cycle over
// the tracked lottery games.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"lottowatch-backend/lib/scrapers/nationallottery"
	"lottowatch-backend/services/watcher/notify"
	"lottowatch-backend/services/watcher/store"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/watcher")

type Service struct {
	fetcher   nationallottery.Fetcher
	store     store.Repository
	notifiers []notify.Notifier
}

func NewService(fetcher nationallottery.Fetcher, repository store.Repository, notifiers []notify.Notifier) Service {
	return Service{
		fetcher:   fetcher,
		store:     repository,
		notifiers: notifiers,
	}
}

// Run executes one watch cycle. Only a failure to retrieve the page or
// to dispatch a due notification fails the run; bad data for individual
// games and snapshot-store problems degrade with a warning. State is
// persisted before notifications go out, so a dispatch failure never
// corrupts the stored snapshots.
func (s Service) Run(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	current, err := s.fetcher.Fetch(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch games")
		return err
	}

	previous, err := s.store.GetAll(ctx)
	if err != nil {
		slog.WarnContext(ctx, "could not load previous snapshots, starting from empty state", "err", err)
		previous = map[nationallottery.GameID]nationallottery.Game{}
	}

	message := s.composeAlerts(ctx, previous, current)
	span.SetAttributes(attribute.Bool("alerting", message != ""))

	merged := make(map[nationallottery.GameID]nationallottery.Game, len(previous)+len(current))
	for id, game := range previous {
		merged[id] = game
	}
	for id, game := range current {
		if game != nil {
			merged[id] = *game
		}
	}
	err = s.store.PutAll(ctx, merged)
	if err != nil {
		// next run will re-evaluate against the stale snapshot and may
		// re-alert, which beats failing before notifications go out
		slog.ErrorContext(ctx, "failed to persist snapshots", "err", err)
		span.RecordError(err)
	}

	if message == "" {
		slog.InfoContext(ctx, "no alert conditions hold", "games", len(current))
		return nil
	}

	slog.InfoContext(ctx, "dispatching alert", "message", message)
	var errlist []error
	for _, notifier := range s.notifiers {
		err := notifier.Send(ctx, message)
		if err != nil {
			slog.ErrorContext(ctx, "failed to dispatch notification", "err", err)
			errlist = append(errlist, err)
		}
	}
	err = errors.Join(errlist...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to dispatch notifications")
	}
	return err
}

func (s Service) composeAlerts(
	ctx context.Context,
	previous map[nationallottery.GameID]nationallottery.Game,
	current map[nationallottery.GameID]*nationallottery.Game,
) string {
	var message strings.Builder

	if cur := current[nationallottery.GameLotto]; cur != nil {
		if MustBeWon(previousGame(previous, nationallottery.GameLotto), cur) {
			slog.DebugContext(ctx, "must-be-won rule holds", "roll_count", rollCount(cur))
			fmt.Fprintf(
				&message,
				"Lotto must be won! Next draw: %s, Jackpot: £%d",
				cur.NextDrawDate.Format("2006-01-02"),
				cur.Jackpot,
			)
		}
	}

	if cur := current[nationallottery.GameEuromillions]; cur != nil {
		if JackpotOverThreshold(previousGame(previous, nationallottery.GameEuromillions), cur) {
			slog.DebugContext(ctx, "jackpot threshold rule holds", "jackpot", cur.Jackpot)
			fmt.Fprintf(
				&message,
				"Euromillions jackpot is over £100 million! Next draw: %s, Jackpot: £%d",
				cur.NextDrawDate.Format("2006-01-02"),
				cur.Jackpot,
			)
		}
	}

	return message.String()
}

func previousGame(
	previous map[nationallottery.GameID]nationallottery.Game,
	id nationallottery.GameID,
) *nationallottery.Game {
	game, ok := previous[id]
	if !ok {
		return nil
	}
	return &game
}
