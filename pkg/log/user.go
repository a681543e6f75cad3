package log

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger prints run-level messages: what was found, which mode is active
// and why a run could not start.
type UserLogger struct {
	out io.Writer
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a user logger printing to out
func NewUserLogger(ctx context.Context, out io.Writer) *UserLogger {
	return &UserLogger{
		out: out,
		log: *zerolog.Ctx(ctx),
	}
}

func (u *UserLogger) printer(base pterm.PrefixPrinter, prefix string) *pterm.PrefixPrinter {
	return base.WithPrefix(pterm.Prefix{Text: prefix, Style: base.Prefix.Style}).WithWriter(u.out)
}

// 🔍 LogFound reports how many documents discovery returned
func (u *UserLogger) LogFound(count int) {
	if count == 0 {
		u.printer(pterm.Warning, "⚠️").Println("No markdown files found")
		u.log.Warn().Msg("no markdown files found")
		return
	}

	noun := "files"
	if count == 1 {
		noun = "file"
	}
	msg := fmt.Sprintf("Found %d markdown %s", count, noun)
	u.printer(pterm.Info, "🔍").Println(msg)
	u.log.Info().Int("count", count).Msg(msg)
}

// 🧪 LogDryRun announces that nothing will be written or deleted
func (u *UserLogger) LogDryRun() {
	msg := "Dry run mode: no files will be modified or deleted"
	u.printer(pterm.Info, "🧪").Println(msg)
	u.log.Info().Msg(msg)
}

// ⚙️ LogConfig reports which config file was applied
func (u *UserLogger) LogConfig(path string) {
	if path == "" {
		return
	}
	msg := fmt.Sprintf("Using config %s", path)
	u.printer(pterm.Info, "⚙️").Println(msg)
	u.log.Debug().Str("path", path).Msg("config loaded")
}

// ❌ LogFailed repeats a per-document failure after the summary
func (u *UserLogger) LogFailed(path string, err error) {
	u.printer(pterm.Error, "❌").Printfln("%s: %v", path, err)
	u.log.Error().Err(err).Str("path", path).Msg("file failed")
}

// ❌ LogFatal reports an error that stopped the run
func (u *UserLogger) LogFatal(err error) {
	u.printer(pterm.Error, "❌").Println(err.Error())
	u.log.Error().Err(err).Msg("run failed")
}
