package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
	FormatPretty  = "pretty"
)

// Logger is a zerolog logger that speaks in field maps.
type Logger struct {
	zl zerolog.Logger
}

// New builds a logger writing to cfg.Output ("stdout" or "stderr").
func New(cfg *Config, name string) *Logger {
	var w io.Writer = os.Stderr
	if strings.EqualFold(cfg.Output, "stdout") {
		w = os.Stdout
	}
	return NewWithWriter(cfg, name, w)
}

// NewWithWriter builds a logger writing to w. An unknown level means info.
// name tags every line: a "service" field in JSON, a short prefix on the console.
func NewWithWriter(cfg *Config, name string, w io.Writer) *Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var ctx zerolog.Context
	if cfg.console() {
		ctx = zerolog.New(consoleWriter(w, name, cfg.NoColor)).With().Timestamp()
	} else {
		ctx = zerolog.New(w).With()
		if cfg.Timestamp {
			ctx = ctx.Timestamp()
		}
		if name != "" {
			ctx = ctx.Str(FieldService, name)
		}
	}
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return &Logger{zl: ctx.Logger().Level(level)}
}

// NewNop returns a logger that writes nothing.
func NewNop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// WithContext tags lines with the trace and span of the span active in ctx.
// Without one it returns l unchanged.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return l
	}
	return &Logger{zl: l.zl.With().
		Str(FieldTraceID, sc.TraceID().String()).
		Str(FieldSpanID, sc.SpanID().String()).
		Logger()}
}

// WithComponent tags lines with the emitting component.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{zl: l.zl.With().Str(FieldComponent, name).Logger()}
}

// WithFields attaches fields to every subsequent line.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{zl: l.zl.With().Fields(fields).Logger()}
}

// Enabled reports whether a line at level would be written.
func (l *Logger) Enabled(level zerolog.Level) bool {
	return l.zl.GetLevel() <= level && zerolog.GlobalLevel() <= level
}

func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	emit(l.zl.Debug(), msg, fields)
}

func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	emit(l.zl.Info(), msg, fields)
}

func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	emit(l.zl.Warn(), msg, fields)
}

func (l *Logger) Error(msg string, fields ...map[string]interface{}) {
	emit(l.zl.Error(), msg, fields)
}

func emit(ev *zerolog.Event, msg string, fields []map[string]interface{}) {
	for _, f := range fields {
		ev = ev.Fields(f)
	}
	ev.Msg(msg)
}

type levelStyle struct {
	tag   string
	color int
}

var levelStyles = map[string]levelStyle{
	"debug": {"DBG", 36},
	"info":  {"INF", 32},
	"warn":  {"WRN", 33},
	"error": {"ERR", 31},
	"fatal": {"FTL", 35},
}

func paint(s string, color int, noColor bool) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\033[%dm%s\033[0m", color, s)
}

// consoleWriter renders "[LAT][WRN] message key:value" lines for terminals.
func consoleWriter(w io.Writer, name string, noColor bool) zerolog.ConsoleWriter {
	prefix := ""
	if len(name) >= 3 {
		prefix = paint("["+strings.ToUpper(name[:3])+"]", 34, noColor)
	}
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
		FormatLevel: func(i interface{}) string {
			lvl := fmt.Sprint(i)
			style, ok := levelStyles[lvl]
			if !ok {
				return prefix + "[" + strings.ToUpper(lvl) + "]"
			}
			return prefix + paint("["+style.tag+"]", style.color, noColor)
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprint(i) + ":"
		},
	}
}
