// Package logger builds *slog.Logger values with functional options and
// injects request scoped attributes taken from the context.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.Name),
//		logger.WithConfig(logCfg),
//		logger.WithContextExtractors(requestid.LogExtractor),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "request served",
//		logger.Method(r.Method),
//		logger.Status(200),
//		logger.Duration(time.Since(start)),
//	)
//
// Attribute helpers such as Error and UserID return an empty Attr for nil
// values, which slog drops, so callers can pass them without nil checks.
package logger
