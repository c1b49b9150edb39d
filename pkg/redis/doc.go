// Package redis connects to redis with go-redis and exposes a readiness
// probe. The session package stores sessions through the returned client
// when SESSION_STORE=redis.
//
//	cfg := config.MustLoad[redis.Config]()
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := session.NewRedisStore(client, cfg.SessionPrefix)
package redis
