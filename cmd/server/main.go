package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/ekarlsen/seatlock/admission"
	"github.com/ekarlsen/seatlock/claim"
	"github.com/ekarlsen/seatlock/lock"
	"github.com/ekarlsen/seatlock/logger"
	"github.com/ekarlsen/seatlock/occupancy"
	"github.com/ekarlsen/seatlock/server"
	"github.com/ekarlsen/seatlock/storage"
)

func main() {
	var (
		listenAddr = flag.String("listen", server.DefaultListenAddress, "gRPC listen address")
		redisAddr  = flag.String("redis", "", "Redis address; empty selects the in-memory store")
		redisDB    = flag.Int("redis-db", 0, "Redis database number")
		keyPrefix  = flag.String("key-prefix", "seatlock", "Redis key prefix")
		rateLimit  = flag.Int("rate-limit", 0, "requests per second; 0 disables rate limiting")
		logLevel   = flag.String("log-level", "info", "minimum log level (debug, info, warn, error)")
	)
	flag.Parse()

	log := logger.NewStdLogger(*logLevel)

	var store storage.Store
	if *redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: *redisAddr,
			DB:   *redisDB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalw("Redis unreachable", "address", *redisAddr, "error", err)
		}
		store = storage.NewRedisStore(rdb, storage.WithKeyPrefix(*keyPrefix))
		log.Infow("using Redis store", "address", *redisAddr, "db", *redisDB)
	} else {
		store = storage.NewMemoryStore()
		log.Infow("using in-memory store; one-shot claims are process-local")
	}
	defer func() { _ = store.Close() }()

	locks := lock.NewManager(lock.WithLogger(log))
	defer func() { _ = locks.Close() }()

	resolver := occupancy.NewResolver(store, store, occupancy.WithLogger(log))
	admitter := admission.NewAdmitter(locks, store, resolver, admission.WithLogger(log))
	claimer := claim.NewClaimer(store, claim.WithLogger(log))

	config := server.DefaultConfig()
	config.ListenAddress = *listenAddr
	config.Logger = log
	if *rateLimit > 0 {
		config.EnableRateLimit = true
		config.RateLimit = *rateLimit
		config.RateLimitBurst = 2 * *rateLimit
	}

	srv, err := server.NewServer(config, admitter, claimer)
	if err != nil {
		log.Fatalw("failed to build server", "error", err)
	}
	if err := srv.Start(context.Background()); err != nil {
		log.Fatalw("failed to start server", "error", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Infow("shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		log.Errorw("shutdown failed", "error", err)
		os.Exit(1)
	}
}
