package app

import (
	"context"
	"encoding/json"
	"log"

	"career-navigator/internal/authgate"
	"career-navigator/internal/config"
	"career-navigator/internal/infrastructure/cache"
	"career-navigator/internal/pkg/sessiontoken"
	"career-navigator/internal/sessionstore"
	"career-navigator/internal/usecase/dashboard"
	"career-navigator/internal/usecase/proxy"
	"career-navigator/internal/ws"
)

// Container wires the long-lived collaborators: the store client, the cache,
// the auth gate with its single notification subscription, the push hub, and
// the optional realtime listener.
type Container struct {
	Config config.Config
	Logger *log.Logger

	Store     *sessionstore.Client
	Cache     *cache.Redis
	Gate      *authgate.Gate
	Hub       *ws.Hub
	Proxy     *proxy.Service
	Dashboard *dashboard.Service
	Tokens    *sessiontoken.Parser

	stopListener context.CancelFunc
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	store := sessionstore.NewClient(cfg.Store, logger)
	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	gate := authgate.New(store, logger)
	gate.OnChange(func(st authgate.State) {
		email := ""
		if st.Session != nil {
			email = st.Session.Email
		}
		ws.NotifyAuthState(st.Phase.String(), email)
	})
	if err := gate.Mount(context.Background()); err != nil {
		return nil, err
	}

	c := &Container{
		Config:    cfg,
		Logger:    logger,
		Store:     store,
		Cache:     redisCache,
		Gate:      gate,
		Hub:       hub,
		Proxy:     proxy.NewService(store, redisCache, logger),
		Dashboard: dashboard.NewService(store, redisCache, logger),
		Tokens:    sessiontoken.NewParser(cfg.Store.JWTSecret),
	}

	c.startRealtime(cfg)
	return c, nil
}

// startRealtime listens for roadmap inserts made by other writers (another
// proxy instance, the store console) so cached reads do not go stale.
func (c *Container) startRealtime(cfg config.Config) {
	if cfg.Store.URL == "" || cfg.Store.AnonKey == "" {
		return
	}

	listener := sessionstore.NewListener(cfg.Store.URL, cfg.Store.AnonKey, "roadmaps", c.Logger, func(ch sessionstore.TableChange) {
		if ch.Type != "INSERT" {
			return
		}
		var rec struct {
			UserID string `json:"user_id"`
		}
		if err := json.Unmarshal(ch.Record, &rec); err != nil || rec.UserID == "" {
			return
		}
		_ = c.Cache.InvalidateUser(context.Background(), rec.UserID)
		ws.NotifyRoadmapSaved(rec.UserID)
	})
	if listener == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.stopListener = cancel
	go listener.Run(ctx)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.stopListener != nil {
		c.stopListener()
	}
	if c.Gate != nil {
		c.Gate.Close()
	}
	return nil
}
