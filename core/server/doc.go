// Package server provides the HTTP transport wrapper: an http.Server
// with graceful shutdown, environment-driven configuration, and
// functional options.
//
//	srv := server.New(":8080", server.WithLogger(log))
//	if err := srv.Start(ctx, app); err != nil && !errors.Is(err, context.Canceled) {
//		log.Error("server failed", logger.Error(err))
//	}
//	_ = srv.Stop()
//
// Configuration may come from the environment via Config and
// NewFromConfig; TLS is enabled by pointing both SERVER_TLS_CERT_FILE
// and SERVER_TLS_KEY_FILE at a key pair.
package server
