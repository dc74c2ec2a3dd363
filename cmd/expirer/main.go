// Job - разовая просрочка: миссии клиентов и неиспользованные ваучеры
package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	db "github.com/noorbagus/louva-app-sub000/internal/db"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// database
	storage, err := db.NewLoyaltyDB(logger)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	now := time.Now()
	missions, err := storage.ExpireUserMissions(ctx, now)
	if err != nil {
		logger.Error(err.Error())
	}
	vouchers, err := storage.ExpireRedemptions(ctx, now)
	if err != nil {
		logger.Error(err.Error())
	}
	logger.Info("expired",
		zap.Int64("missions", missions),
		zap.Int64("vouchers", vouchers),
	)
}
