package db

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type CacheService struct {
	client *redis.Client
}

func NewCacheService() (serv *CacheService, err error) {

	// config
	addr := os.Getenv("LOYALTY_CACHE_URL")
	if addr == "" {
		return nil, fmt.Errorf("env LOYALTY_CACHE_URL is not set")
	}
	user := os.Getenv("LOYALTY_CACHE_USER")
	if user == "" {
		return nil, fmt.Errorf("env LOYALTY_CACHE_USER is not set")
	}
	pwd := os.Getenv("LOYALTY_CACHE_PWD")
	if pwd == "" {
		return nil, fmt.Errorf("env LOYALTY_CACHE_PWD is not set")
	}
	// redis
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    pwd,
		Username:    user,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = client.Ping(context.Background()).Err()
	if err != nil {
		return nil, err
	}

	return &CacheService{client}, nil
}

func balanceKey(customer string) string {
	return "balance:" + customer
}

func (c *CacheService) GetBalance(ctx context.Context, customer string) (points int64, err error) {
	val, err := c.client.Get(ctx, balanceKey(customer)).Result()
	if err == redis.Nil {
		return 0, fmt.Errorf("not found")
	} else if err != nil {
		return 0, err
	}

	points, err = strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, err
	}
	return points, nil
}

func (c *CacheService) SetBalance(ctx context.Context, customer string, points int64) (err error) {
	err = c.client.Set(ctx, balanceKey(customer), points, 5*time.Minute).Err()
	if err != nil {
		return err
	}
	return nil
}

func (c *CacheService) InvalidateBalance(ctx context.Context, customer string) error {
	err := c.client.Del(ctx, balanceKey(customer)).Err()
	if err != nil {
		return err
	}
	return nil
}
