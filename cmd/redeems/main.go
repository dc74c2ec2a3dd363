// Job - погашение наград по запросам киосков
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
	rabbit "github.com/noorbagus/louva-app-sub000/internal/external/rabbitmq"
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

	// rabbitmq
	reader, err := rabbit.NewRabbitConsumer()
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer reader.Close()

	// database
	var storage interf.LoyaltyStorage
	dt, err := db.NewLoyaltyDB(logger)
	if err != nil {
		logger.Error(err.Error())
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
		logger.Error(err.Error())
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
	semenv := os.Getenv("LOYALTY_REDEEM_WORKERS")
	if semenv == "" {
		semcount = 5
	} else {
		semcount, err = strconv.Atoi(semenv)
		if err != nil {
			semcount = 5
		}
	}

	// os signals
	go func() {
		<-interrupt
		cancel()
	}()

	// workers
	wg := &sync.WaitGroup{}
	wg.Add(semcount)
	for i := 0; i < semcount; i++ {
		go worker(ctx, serv, wg, logger, reader)
	}
	wg.Wait()
}

// worker for rabbitmq messages
func worker(ctx context.Context, serv *services.LoyaltyService, wg *sync.WaitGroup, logger *zap.Logger, reader *rabbit.RabbitConsumer) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		default:
			msg, ok := <-reader.Msg
			if !ok {
				return
			}
			requestId, voucher, err := serv.RedeemFromJSON(ctx, string(msg.Body))
			if err != nil {
				logger.Error(err.Error())
				if requestId != "" {
					_ = reader.Processed(ctx, requestId, "", false)
				}
				continue
			}
			err = reader.Processed(ctx, requestId, voucher, true)
			if err != nil {
				logger.Error(err.Error())
				continue
			}

		}
	}
}
