package main

/*
序列分析命令行: 搜索、酶切、凝胶、引物结合位点
*/

import (
	"log/slog"
	"os"
	"time"
)

func main() {
	t0 := time.Now()
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("seqviz", "error", err)
		os.Exit(1)
	}
	slog.Debug("Done", "elapsed", time.Since(t0))
}
