package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"lottowatch-backend/lib/scrapers/nationallottery"
	"lottowatch-backend/services/watcher/notify"
	"lottowatch-backend/services/watcher/store"

	"github.com/stretchr/testify/require"
)

type pageSource struct {
	content string
}

func (s *pageSource) Get(ctx context.Context) (string, error) {
	if s.content == "" {
		return "", fmt.Errorf("connection reset")
	}
	return s.content, nil
}

func gamesPage(lottoRollCount int64, euromillionsJackpot string) string {
	return fmt.Sprintf(`<html><head>
		<meta name="lotto-next-draw-date" content="16-07-2025"/>
		<meta name="lotto-next-draw-jackpot" content="£5,200,000"/>
		<meta name="lotto-roll-count" content="%d"/>
		<meta name="euromillions-next-draw-date" content="18-07-2025"/>
		<meta name="euromillions-next-draw-jackpot" content="%s"/>
	</head><body></body></html>`, lottoRollCount, euromillionsJackpot)
}

type recordingNotifier struct {
	messages []string
	err      error
}

func (n *recordingNotifier) Send(ctx context.Context, message string) error {
	if n.err != nil {
		return n.err
	}
	n.messages = append(n.messages, message)
	return nil
}

func setup(t testing.TB) (Service, *pageSource, *recordingNotifier, store.Repository) {
	source := &pageSource{}
	notifier := &recordingNotifier{}
	repository := store.NewYamlStore(filepath.Join(t.TempDir(), "games.yml"))

	service := NewService(
		nationallottery.NewFetcher(source, nil),
		repository,
		[]notify.Notifier{notifier},
	)
	return service, source, notifier, repository
}

func TestRunAlertTransitions(t *testing.T) {
	service, source, notifier, repository := setup(t)
	ctx := context.Background()

	// first observation: both rules fire
	source.content = gamesPage(3, "£96M")
	err := service.Run(ctx)
	require.NoError(t, err)
	require.Len(t, notifier.messages, 1)
	require.Contains(t, notifier.messages[0], "Lotto must be won!")
	require.Contains(t, notifier.messages[0], "Euromillions jackpot is over £100 million!")

	persisted, err := repository.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(5_200_000), persisted[nationallottery.GameLotto].Jackpot)
	require.Equal(t, int64(96_000_000), persisted[nationallottery.GameEuromillions].Jackpot)

	// unchanged page: nothing new to say
	err = service.Run(ctx)
	require.NoError(t, err)
	require.Len(t, notifier.messages, 1)

	// roll count crosses 5 and the jackpot passes the threshold
	source.content = gamesPage(6, "£120,000,000")
	err = service.Run(ctx)
	require.NoError(t, err)
	require.Len(t, notifier.messages, 2)
	require.Contains(t, notifier.messages[1], "Lotto must be won!")
	require.Contains(t, notifier.messages[1], "Euromillions jackpot is over £100 million!")

	// staying above both thresholds does not re-fire
	source.content = gamesPage(7, "£120,000,000")
	err = service.Run(ctx)
	require.NoError(t, err)
	require.Len(t, notifier.messages, 2)
}

func TestRunFetchFailureIsFatal(t *testing.T) {
	service, source, notifier, repository := setup(t)
	ctx := context.Background()

	source.content = ""
	err := service.Run(ctx)
	require.Error(t, err)
	require.Empty(t, notifier.messages)

	persisted, err := repository.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, persisted)
}

func TestRunDispatchFailureKeepsState(t *testing.T) {
	service, source, notifier, repository := setup(t)
	ctx := context.Background()

	notifier.err = fmt.Errorf("webhook down")
	source.content = gamesPage(3, "£96M")

	err := service.Run(ctx)
	require.ErrorIs(t, err, notifier.err)

	// state was persisted before dispatch was attempted
	persisted, err := repository.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 2)
}

func TestRunUnparsableGameIsSkipped(t *testing.T) {
	service, source, notifier, _ := setup(t)
	ctx := context.Background()

	// euromillions jackpot cannot normalize: the game is treated as
	// unknown and its rule is not evaluated
	source.content = gamesPage(3, "TBC")
	err := service.Run(ctx)
	require.NoError(t, err)
	require.Len(t, notifier.messages, 1)
	require.Contains(t, notifier.messages[0], "Lotto must be won!")
	require.NotContains(t, notifier.messages[0], "Euromillions")
}
