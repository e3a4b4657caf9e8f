package ffmpeg

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onLine func(string)) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithLogger sets the logger used for command tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client wraps ffmpeg CLI interactions.
type Client struct {
	binary string
	exec   Executor
	logger *slog.Logger
}

// New constructs an ffmpeg client. An empty binary falls back to "ffmpeg".
func New(binary string, opts ...Option) *Client {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	client := &Client{binary: binary, exec: CommandExecutor{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// SegmentRequest describes one segment-muxer invocation.
type SegmentRequest struct {
	Input          string
	OutputTemplate string
	SegmentSeconds float64
	Copy           bool
}

// Segment splits the input into sequential files at the requested interval.
// Stream copy snaps cut points to source keyframes; re-encode cuts exactly.
func (c *Client) Segment(ctx context.Context, req SegmentRequest, onLine func(string)) error {
	if strings.TrimSpace(req.Input) == "" {
		return errors.New("segment: input path required")
	}
	if strings.TrimSpace(req.OutputTemplate) == "" {
		return errors.New("segment: output template required")
	}
	if req.SegmentSeconds <= 0 {
		return fmt.Errorf("segment: segment time must be positive, got %v", req.SegmentSeconds)
	}

	args := []string{"-hide_banner", "-y", "-i", req.Input, "-map", "0"}
	args = append(args, codecArgs(req.Copy, "veryfast")...)
	args = append(args,
		"-f", "segment",
		"-segment_time", strconv.FormatFloat(req.SegmentSeconds, 'f', -1, 64),
		"-reset_timestamps", "1",
		req.OutputTemplate,
	)

	c.logger.Debug("running ffmpeg", slog.String("binary", c.binary), slog.String("args", strings.Join(args, " ")))
	if err := c.exec.Run(ctx, c.binary, args, onLine); err != nil {
		return fmt.Errorf("ffmpeg segment: %w", err)
	}
	return nil
}

// ConcatRequest describes one concat invocation over a prepared list file.
type ConcatRequest struct {
	ListPath string
	Output   string
	Copy     bool
}

// Concat joins the entries of the list file into a single output, replacing
// any existing file at the output path.
func (c *Client) Concat(ctx context.Context, req ConcatRequest, onLine func(string)) error {
	if strings.TrimSpace(req.ListPath) == "" {
		return errors.New("concat: list path required")
	}
	if strings.TrimSpace(req.Output) == "" {
		return errors.New("concat: output path required")
	}

	args := []string{"-hide_banner", "-y", "-f", "concat", "-safe", "0", "-i", req.ListPath}
	args = append(args, codecArgs(req.Copy, "medium")...)
	args = append(args, req.Output)

	c.logger.Debug("running ffmpeg", slog.String("binary", c.binary), slog.String("args", strings.Join(args, " ")))
	if err := c.exec.Run(ctx, c.binary, args, onLine); err != nil {
		return fmt.Errorf("ffmpeg concat: %w", err)
	}
	return nil
}

// codecArgs returns the stream-copy flags or the re-encode codec set.
func codecArgs(copyStreams bool, preset string) []string {
	if copyStreams {
		return []string{"-c", "copy"}
	}
	return []string{
		"-c:v", "libx264",
		"-preset", preset,
		"-crf", "23",
		"-c:a", "aac",
		"-b:a", "128k",
	}
}

// errorTailLines bounds how much diagnostic output is echoed into errors.
const errorTailLines = 20

// CommandExecutor runs the real binary, forwarding combined output line by
// line and keeping a tail of recent lines for error reporting.
type CommandExecutor struct{}

func (CommandExecutor) Run(ctx context.Context, binary string, args []string, onLine func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	var mu sync.Mutex
	var tail []string
	forward := func(line string) {
		mu.Lock()
		tail = append(tail, line)
		if len(tail) > errorTailLines {
			tail = tail[1:]
		}
		mu.Unlock()
		if onLine != nil {
			onLine(line)
			return
		}
		fmt.Fprintln(os.Stderr, line)
	}

	var wg sync.WaitGroup
	scan := func(r io.Reader) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			forward(scanner.Text())
		}
	}

	wg.Add(2)
	go scan(stdout)
	go scan(stderr)
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		mu.Lock()
		diagnostics := strings.Join(tail, "\n")
		mu.Unlock()
		if diagnostics != "" {
			return fmt.Errorf("%w: %s", err, diagnostics)
		}
		return err
	}
	return nil
}
