package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"Relief/internal/batch"
	"Relief/internal/geometry"
	"Relief/internal/importer"
	"Relief/internal/report"
	"Relief/internal/sizing"
	"Relief/internal/web"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router) {
	limiter := web.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	sizingH := &sizing.Handler{}
	vesselH := &geometry.Handler{}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	reportH := &report.Handler{}

	api.HandleFunc("/tools/psv/calc", sizingH.Calc).Methods("POST")
	api.HandleFunc("/tools/psv/batch", batchH.Calc).Methods("POST")
	api.HandleFunc("/tools/psv/import", importH.Cases).Methods("POST")
	api.HandleFunc("/tools/psv/report", reportH.Generate).Methods("POST")
	api.HandleFunc("/tools/vessel/calc", vesselH.Calc).Methods("POST")

	// The calculation form and its assets.
	mux.PathPrefix("/").Handler(http.FileServer(http.Dir("./static/main")))
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment defaults")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	mux := mux.NewRouter()
	HandleList(mux)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	log.Infof("Starting server on :%s", port)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error stopping server: %v", err)
	}
	log.Info("Server stopped")

	wg.Wait()
}
