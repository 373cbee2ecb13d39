package main

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

// debugEnv 为真时开启 debug 日志，并在结束时打印全局计数。
const debugEnv = "WORDFREQ_DEBUG"

var (
	logger = slog.Default()
	debug  bool
)

func main() {
	debug = debugEnabled(os.Getenv(debugEnv))
	logger = slog.New(slog.NewTextHandler(os.Stderr, getLoggerOptions()))

	// 正则必须在启动任何统计任务之前完成初始化
	if _, err := compileWordPattern(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to initialize tokenizer: %s\n", err.Error())
		os.Exit(1)
	}

	if err := run(os.Stdout, os.DirFS("."), &Scheduler{}); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to count words: %s\n", err.Error())
		os.Exit(1)
	}
}

func debugEnabled(v string) bool {
	ok, err := strconv.ParseBool(v)
	return err == nil && ok
}

func getLoggerOptions() *slog.HandlerOptions {
	logOpts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	}

	if debug {
		logOpts.Level = slog.LevelDebug
	}

	return logOpts
}

// run 统计 fsys 中的单词，并将排名写入 w。
func run(w io.Writer, fsys fs.FS, s *Scheduler) error {
	freqs, err := s.Run(fsys)
	if err != nil {
		return err
	}
	if debug {
		spew.Fdump(os.Stderr, freqs)
	}
	return printRanked(w, Top(freqs, topN))
}

// printRanked 每行输出一个 "<count> <word>"。
func printRanked(w io.Writer, ranked []WordCount) error {
	bw := bufio.NewWriter(w)
	for _, wc := range ranked {
		if _, err := fmt.Fprintf(bw, "%d %s\n", wc.Count, wc.Word); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
