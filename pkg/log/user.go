package log

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides live user-friendly feedback for run-level events;
// per-file placement lines go through Logger.LogPlacement instead
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📁 LogFolderCreated logs the first creation of a destination folder
func (u *UserLogger) LogFolderCreated(folder string) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📁"})
	printer.Printf("Created %s\n", folder)
	u.log.Info().Str("folder", folder).Msg("created destination folder")
}
