package main

import (
	"errors"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestWaitForStop_Signal(t *testing.T) {
	quit := make(chan os.Signal, 1)
	serveErr := make(chan error, 1)
	quit <- syscall.SIGTERM

	assert.Equal(t, 0, waitForStop(quit, serveErr, zap.NewNop()))
}

func TestWaitForStop_ListenError(t *testing.T) {
	// 端口被占用等监听失败：返回非零退出码，而不是在 goroutine 里直接退出进程
	quit := make(chan os.Signal, 1)
	serveErr := make(chan error, 1)
	serveErr <- errors.New("listen tcp :8080: bind: address already in use")

	assert.Equal(t, 1, waitForStop(quit, serveErr, zap.NewNop()))
}
