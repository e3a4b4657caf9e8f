package main

import (
	"log/slog"
	"strings"
	"sync"

	"cleave/internal/config"
	"cleave/internal/logging"
	"cleave/internal/media/ffprobe"
	"cleave/internal/services/ffmpeg"
)

// Test seams: tests swap these to keep the real binaries out of the loop.
var (
	engineExecutor ffmpeg.Executor
	probeRunner    ffprobe.Runner
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg, stderrIsTerminal())
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) engine(cfg *config.Config) *ffmpeg.Client {
	var opts []ffmpeg.Option
	if engineExecutor != nil {
		opts = append(opts, ffmpeg.WithExecutor(engineExecutor))
	}
	if c.logger != nil {
		opts = append(opts, ffmpeg.WithLogger(c.logger))
	}
	return ffmpeg.New(cfg.Tools.FFmpeg, opts...)
}

func (c *commandContext) prober(cfg *config.Config) *ffprobe.Client {
	var opts []ffprobe.Option
	if probeRunner != nil {
		opts = append(opts, ffprobe.WithRunner(probeRunner))
	}
	return ffprobe.New(cfg.Tools.FFprobe, opts...)
}
