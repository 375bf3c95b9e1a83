package safemd

import (
	"io"
	"log"
	"os"
)

// Logger 全局日志记录器
//
// It receives configuration warnings (unknown TOML keys) and, outside strict
// mode, internal defects found while writing output. Ordinary input never
// logs.
var Logger = log.New(os.Stderr, "[safemd] ", log.LstdFlags)

// SetLogger 设置自定义日志记录器，nil 表示丢弃所有日志
func SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	Logger = logger
}
