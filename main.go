package main

import (
	"os"

	"github.com/CodeMonkeyCybersecurity/xcpreport/cmd"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/config"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/logger"
)

func main() {
	logCfg := config.LoadLogConfigOrDefault()
	logger.Initialize(logCfg.Level, logCfg.Development)

	code := cmd.Execute()
	logger.Sync()
	os.Exit(code)
}
