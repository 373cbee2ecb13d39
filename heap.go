package main

// wordCountHeap 是按出现次数排序的小顶堆，堆顶为当前保留的最小计数。
type wordCountHeap []WordCount

func (w *wordCountHeap) Len() int {
	return len(*w)
}

// Less 只比较次数，次数相同的单词之间没有确定顺序。
func (w *wordCountHeap) Less(i int, j int) bool {
	return (*w)[i].Count < (*w)[j].Count
}

func (w *wordCountHeap) Swap(i int, j int) {
	(*w)[i], (*w)[j] = (*w)[j], (*w)[i]
}

func (w *wordCountHeap) Pop() any {
	v := (*w)[len(*w)-1]
	*w = (*w)[:len(*w)-1]
	return v
}

func (w *wordCountHeap) Push(x any) {
	*w = append(*w, x.(WordCount))
}
