// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers with consistent keys.
//
// New picks a JSON or text handler, applies static attributes and wraps the
// handler in a LogHandlerDecorator that pulls request-scoped attributes (such
// as a request id) out of the context of every log call:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "isd"),
//	    logger.WithLevel(cfg.LogLevel),
//	    logger.WithContextExtractors(requestID),
//	)
//	log.InfoContext(ctx, "card checked",
//	    logger.Card(number),
//	    logger.Issuer(issuer),
//	    logger.Result(ok),
//	)
//
// Card masks the number before it is logged. Error and Errors return an empty
// attribute for nil errors, so they can be passed unconditionally.
package logger
