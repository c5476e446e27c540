// Command titlesmith composes marketplace listing titles from the shell
package main

import (
	"os"

	"titlesmith/internal/platform/config"
	"titlesmith/internal/platform/logger"
)

func main() {
	// logs go to stderr so stdout stays pipeable
	opt := logger.FromEnv()
	opt.Writer = os.Stderr
	opt.Level = config.New().MayString("LOG_LEVEL", "warn")
	logger.Init(opt)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
