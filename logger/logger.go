package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process-wide logger. It is usable before Init with logrus
// defaults so packages and tests never see a nil logger.
var Log = logrus.New()

// Options configures Init. LOG_LEVEL and LOG_FORMAT override Level and Format.
type Options struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Init configures Log. Call once from main before the game starts.
func Init(opts Options) {
	Log.SetLevel(parseLevel(opts.Level))
	Log.SetFormatter(newFormatter(opts.Format))
	Log.SetOutput(newOutput(opts))
}

func parseLevel(fallback string) logrus.Level {
	name, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		name = fallback
	}
	if name == "" {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func newFormatter(fallback string) logrus.Formatter {
	format, ok := os.LookupEnv("LOG_FORMAT")
	if !ok {
		format = fallback
	}
	if strings.ToLower(format) == "json" {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{FullTimestamp: true}
}

func newOutput(opts Options) io.Writer {
	if opts.File == "" {
		return os.Stdout
	}
	// rotated file copy next to stdout
	file := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		LocalTime:  true,
	}
	return io.MultiWriter(os.Stdout, file)
}
