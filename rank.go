package main

import "container/heap"

// topN 是输出的单词数。
const topN = 10

// WordCount 是排名结果中的一项。
type WordCount struct {
	Word  string
	Count int64
}

// Top 返回 freqs 中出现次数最多的至多 k 个单词，按次数降序排列。
// 只有前 k 个元素被排序，其余直接丢弃；次数相同的单词顺序不确定。
func Top(freqs Frequencies, k int) []WordCount {
	if k <= 0 || len(freqs) == 0 {
		return nil
	}

	h := make(wordCountHeap, 0, min(k, len(freqs)))
	for w, n := range freqs {
		if h.Len() < k {
			heap.Push(&h, WordCount{Word: w, Count: n})
			continue
		}
		if n > h[0].Count {
			h[0] = WordCount{Word: w, Count: n}
			heap.Fix(&h, 0)
		}
	}

	ranked := make([]WordCount, h.Len())
	for i := len(ranked) - 1; i >= 0; i-- {
		ranked[i] = heap.Pop(&h).(WordCount)
	}
	return ranked
}
