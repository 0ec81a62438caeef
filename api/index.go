package handler

import (
	"net/http"
	"sync"

	"todo/config"
	"todo/di"
	"todo/shared/logger"
	"todo/shared/timezone"
	transport "todo/transport/http"
)

var (
	once   sync.Once
	server *transport.HTTP
)

// Handler is the serverless entry point. The service graph is built on the
// first invocation and reused by warm instances.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger()

		cfg := config.Get()

		logger.SetLogLevel(cfg)
		timezone.Init(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
