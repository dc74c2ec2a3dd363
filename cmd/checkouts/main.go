// Job - обработка чеков из POS
// Опрос Kafka -> начисление баллов по чеку
package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"go.uber.org/zap"

	db "github.com/noorbagus/louva-app-sub000/internal/db"
	kafka "github.com/noorbagus/louva-app-sub000/internal/external/kafka"
	interf "github.com/noorbagus/louva-app-sub000/internal/interfaces"
	services "github.com/noorbagus/louva-app-sub000/internal/services"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// kafka
	reader, err := kafka.GetNewReader("checkouts")
	if err != nil {
		panic(err)
	}
	defer reader.CloseReader()

	// database
	var storage interf.LoyaltyStorage
	dt, err := db.NewLoyaltyDB(logger)
	if err != nil {
		panic(err)
	}
	storage = dt

	// cache
	var redis interf.CacheStorage
	redis, err = db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
	}

	// membership rules
	var rules interf.RuleStorage
	rules, err = db.NewRulesDB()
	if err != nil {
		panic(err)
	}

	// services
	serv := services.NewLoyaltyService(logger, storage, redis, rules)

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var semcount int
	semenv := os.Getenv("LOYALTY_CHECKOUT_WORKERS")
	if semenv == "" {
		semcount = 5
	} else {
		semcount, err = strconv.Atoi(semenv)
		if err != nil {
			semcount = 5
		}
	}
	if semcount == 0 {
		semcount = 1
	}

	wg := &sync.WaitGroup{}
	semaphore := make(chan struct{}, semcount)

loop:
	for {
		select {
		case <-interrupt:
			cancel()
			break loop
		case <-ctx.Done():
			break loop
		default:

			checkout, err := reader.GetNewMessage(ctx)
			if err != nil {
				logger.Error(err.Error())
				return
			}

			semaphore <- struct{}{}
			wg.Add(1)
			go func(checkout string) {
				defer wg.Done()
				defer func() { <-semaphore }()
				_, err := serv.CheckoutFromJSON(ctx, checkout)
				if err != nil {
					logger.Error(err.Error())
					return
				}
			}(checkout)
		}
	}
	wg.Wait()
}
