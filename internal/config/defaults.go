package config

const (
	defaultOutDir        = "chunks"
	defaultFFmpegBinary  = "ffmpeg"
	defaultFFprobeBinary = "ffprobe"
	defaultSplitPrefix   = "chunk"
	defaultJoinOutput    = "joined.mp4"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutDir: defaultOutDir,
		},
		Tools: Tools{
			FFmpeg:  defaultFFmpegBinary,
			FFprobe: defaultFFprobeBinary,
		},
		Split: Split{
			Prefix: defaultSplitPrefix,
			Copy:   true,
		},
		Join: Join{
			Output: defaultJoinOutput,
			Copy:   true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
