// Package environment names the deployment environment (development,
// staging, production) and carries it through context.Context.
//
//	ctx = environment.WithContext(ctx, os.Getenv("APP_ENV"))
//	if environment.IsProduction(ctx) {
//	    // quieter diagnostics
//	}
//
// Parse accepts the short aliases dev, stage and prod and falls back to
// Development for unknown names, so a missing variable never breaks startup.
package environment
