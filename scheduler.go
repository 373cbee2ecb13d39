package main

import (
	"fmt"
	"io/fs"
	"path"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// qualifies 判断文件名的扩展名是否恰好为 .txt 或 .TXT，大小写不混用。
func qualifies(name string) bool {
	ext := path.Ext(name)
	if ext == name {
		// ".txt" 这样的隐藏文件没有扩展名
		return false
	}
	return ext == ".txt" || ext == ".TXT"
}

// hostParallelism 返回主机可用的并行执行单元数。
func hostParallelism() (int, error) {
	n := runtime.NumCPU()
	if n < 1 {
		return 0, fmt.Errorf("unexpected host parallelism %d", n)
	}
	return n, nil
}

// pendingTask 是一个已提交、尚未汇总的统计任务。
type pendingTask struct {
	seq    int
	name   string
	result <-chan Frequencies
}

// Scheduler 遍历目录树，为每个符合条件的文件启动一个统计任务，
// 并按提交顺序把结果汇总到全局计数中。
//
// 待汇总队列超过 Parallelism 个任务时，Scheduler 阻塞等待最早提交的任务，
// 即使更晚提交的任务已经完成。同时在运行的任务最多为 Parallelism+1 个。
type Scheduler struct {
	// Parallelism 为 0 时使用主机的 CPU 数。
	Parallelism int
	// Count 统计单个文件，为 nil 时使用 countFile。
	Count func(fsys fs.FS, name string, tok *Tokenizer) Frequencies

	pending []pendingTask
	global  Frequencies
}

func (s *Scheduler) parallelism() (int, error) {
	if s.Parallelism == 0 {
		return hostParallelism()
	}
	if s.Parallelism < 0 {
		return 0, fmt.Errorf("invalid parallelism %d", s.Parallelism)
	}
	return s.Parallelism, nil
}

// Run 统计 fsys 根目录下所有符合条件文件中的单词。
// 每个提交的任务都会被等待并恰好汇总一次，没有取消路径。
func (s *Scheduler) Run(fsys fs.FS) (Frequencies, error) {
	c, err := s.parallelism()
	if err != nil {
		return nil, err
	}
	count := s.Count
	if count == nil {
		count = countFile
	}

	s.pending = s.pending[:0]
	s.global = make(Frequencies)

	var eg errgroup.Group
	submitted := 0
	walkErr := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			// 无法读取的目录直接跳过
			return nil
		}
		if !qualifies(d.Name()) {
			return nil
		}

		tok, err := NewTokenizer()
		if err != nil {
			return err
		}
		ch := make(chan Frequencies, 1)
		eg.Go(func() error {
			ch <- count(fsys, name, tok)
			return nil
		})
		s.pending = append(s.pending, pendingTask{seq: submitted, name: name, result: ch})
		logger.Debug("task submitted", "seq", submitted, "file", name, "pending", len(s.pending))
		submitted++

		for len(s.pending) > c {
			s.drain()
		}
		return nil
	})

	for len(s.pending) > 0 {
		s.drain()
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if walkErr != nil {
		return nil, fmt.Errorf("walk corpus: %w", walkErr)
	}

	logger.Debug("all tasks merged", "tasks", submitted, "words", len(s.global))
	return s.global, nil
}

// drain 等待队首任务，把它的结果合并到全局计数并移出队列。
func (s *Scheduler) drain() {
	head := s.pending[0]
	local := <-head.result
	s.pending[0] = pendingTask{}
	s.pending = s.pending[1:]
	s.global.Merge(local)
	logger.Debug("task merged", "seq", head.seq, "file", head.name, "words", len(local))
}
