// Package app wires the ambient pieces of a fieldkit program: environment
// configuration, the structured logger and the message catalogs used to
// explain validation failures.
//
//	cfg, err := app.Load(ctx)
//	if err != nil {
//	    return err
//	}
//	a, err := app.New(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//
//	if _, err := recipe.New(2, 5, 0, 1, 0, recipe.SauceMayo); err != nil {
//	    for _, msg := range a.Explain(i18n.SetLocale(ctx, "es"), err) {
//	        fmt.Println(msg) // cheese debe estar entre 0 y 2
//	    }
//	}
//
// New installs its logger with slog.SetDefault, so rejected descriptor
// writes are logged at debug level through the configured handler.
//
// Recognized variables: APP_ENV, APP_NAME, LOG_LEVEL, LOG_FORMAT and
// APP_LANGUAGE. English and Spanish catalogs are embedded; WithLocales
// replaces them.
package app
