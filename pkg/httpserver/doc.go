// Package httpserver runs an http.Handler with sane timeouts and a graceful
// shutdown on context cancellation, SIGINT or SIGTERM.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, handler); err != nil {
//		log.Error("server failed", "error", err)
//	}
//
// LivenessHandler and ReadinessHandler back the /health endpoints; readiness
// runs probes such as database.Healthcheck and redis.Healthcheck.
package httpserver
