package rpc

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MixinNetwork/rational/config"
	"github.com/gorilla/handlers"
)

func NewServer(custom *config.Custom, port int) *http.Server {
	router := NewRouter(custom)
	handler := handleCORS(router)
	handler = handlers.ProxyHeaders(handler)

	timeout := time.Duration(custom.RPC.Timeout) * time.Second
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
}

func StartHTTP(custom *config.Custom, port int) error {
	server := NewServer(custom, port)
	return server.ListenAndServe()
}
