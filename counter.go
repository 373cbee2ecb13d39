package main

import (
	"bufio"
	"errors"
	"io"
	"io/fs"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// countFile 统计 name 中每个单词出现的次数。
// 非普通文件、无法打开或读取失败的文件都返回空结果，而不是错误。
func countFile(fsys fs.FS, name string, tok *Tokenizer) Frequencies {
	counts := make(Frequencies)

	// fs.Stat 会跟随符号链接
	info, err := fs.Stat(fsys, name)
	if err != nil || !info.Mode().IsRegular() {
		return counts
	}

	f, err := fsys.Open(name)
	if err != nil {
		return counts
	}
	defer f.Close()

	// 非法的 UTF-8 字节序列被替换为 U+FFFD
	r := bufio.NewReader(transform.NewReader(f, unicode.UTF8.NewDecoder()))
	for {
		line, err := r.ReadString('\n')
		for w := range tok.Words(line) {
			counts[w]++
		}
		if errors.Is(err, io.EOF) {
			return counts
		}
		if err != nil {
			return make(Frequencies)
		}
	}
}
