// Package environment names the deployment environment the engine runs in
// (development, staging, production) and carries it through context.Context
// and structured logs.
//
// Parse accepts the canonical names and their short aliases ("dev",
// "stage", "prod") and falls back to Development for anything else:
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	ctx = environment.WithContext(ctx, env)
//
// LoggerExtractor plugs the environment stored in a context into a logger
// built with pkg/logger:
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
package environment
