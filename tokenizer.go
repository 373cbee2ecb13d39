package main

import (
	"fmt"
	"iter"
	"regexp"
	"strings"
	"sync"
)

// wordPattern 匹配长度不小于 2 的 ASCII 字母串。
// 这里不用 (?i)，因为 Go 的大小写折叠会让 [a-z] 额外匹配 U+017F 和 U+212A。
const wordPattern = `[a-zA-Z]{2,}`

// compileWordPattern 只编译一次正则，必须在启动任何 worker 之前调用。
var compileWordPattern = sync.OnceValues(func() (*regexp.Regexp, error) {
	re, err := regexp.Compile(wordPattern)
	if err != nil {
		return nil, fmt.Errorf("compile word pattern %q: %w", wordPattern, err)
	}
	return re, nil
})

// Tokenizer 将一行文本切分为小写单词。每个并发任务持有自己的实例。
type Tokenizer struct {
	re *regexp.Regexp
}

func NewTokenizer() (*Tokenizer, error) {
	re, err := compileWordPattern()
	if err != nil {
		return nil, err
	}
	return &Tokenizer{re: re}, nil
}

// Words 返回 line 中的单词序列：从左到右、互不重叠、贪婪匹配，结果转为小写。
// 返回的序列是惰性的，可以重复遍历。
func (t *Tokenizer) Words(line string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := line
		for {
			loc := t.re.FindStringIndex(rest)
			if loc == nil {
				return
			}
			if !yield(strings.ToLower(rest[loc[0]:loc[1]])) {
				return
			}
			rest = rest[loc[1]:]
		}
	}
}
