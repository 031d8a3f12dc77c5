package cli

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/swagshop/swagshop/internal/config"
)

// ServerDependencies holds all dependencies needed for the storefront server
type ServerDependencies struct {
	ServerConfig      config.ServerConfig
	LoginHandler      http.Handler
	LogoutHandler     http.Handler
	InventoryHandler  http.Handler
	CartHandler       http.Handler
	CartAddHandler    http.Handler
	CartRemoveHandler http.Handler
}

// RunServe starts the storefront web server
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil)
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	// Set up routes
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})
	mux.Handle("/login", deps.LoginHandler)
	mux.Handle("/logout", deps.LogoutHandler)
	mux.Handle("/inventory", deps.InventoryHandler)
	mux.Handle("/cart", deps.CartHandler)
	mux.Handle("/cart/add", deps.CartAddHandler)
	mux.Handle("/cart/remove", deps.CartRemoveHandler)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(deps.ServerConfig.StaticDir))))

	// Create listener
	addr := fmt.Sprintf(":%s", deps.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	// Create HTTP server
	server := &http.Server{
		Handler: mux,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server listening on %s", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return listener, server, nil
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server
// If shutdown channel is nil, a new channel will be created and registered with signal.Notify
func WaitForShutdown(server *http.Server, shutdown chan os.Signal) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout (primarily for testing)
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration) error {
	// Channel to listen for interrupt or terminate signals
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	}

	// Wait for shutdown signal
	sig := <-shutdown
	log.Printf("Received signal: %v, shutting down server...", sig)

	// Give outstanding requests time to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(ctx); err != nil {
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	log.Println("Server stopped")
	return nil
}
