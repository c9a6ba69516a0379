package main

import (
	"context"

	"lottowatch-backend/cmd/watcher-cli/commands"
	"lottowatch-backend/lib/telemetry"
)

func main() {
	telemetry.InitSlog(true)
	commands.ExecuteContext(context.Background())
}
