package main

import (
	stdLog "log"
	"time"

	"github.com/Astemirdum/ureserve/gateway/app"
	"github.com/Astemirdum/ureserve/gateway/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// @title UReserve gateway
// @version 1.0
// @description Reservation flows for university facilities on top of the UReserve API.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, using environment", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
		config.WithSessionTTL(30*time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("run ", err)
	}
}
