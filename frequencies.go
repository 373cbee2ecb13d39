package main

// Frequencies 记录每个单词出现的次数。
type Frequencies map[string]int64

// Merge 将 local 中的计数累加到 f 中。只能在负责汇总的 goroutine 上调用。
func (f Frequencies) Merge(local Frequencies) {
	for w, n := range local {
		f[w] += n
	}
}
