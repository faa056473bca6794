package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"Takeoff/internal/advisor"
	"Takeoff/internal/calc/estimate"
	"Takeoff/internal/calc/importer"
	"Takeoff/internal/calc/pricing"
	"Takeoff/internal/config"
	"Takeoff/internal/limit"
	"Takeoff/internal/logger"
	"Takeoff/internal/pricebook"
	"Takeoff/internal/repo"
	"Takeoff/internal/respond"
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

type deps struct {
	log     *logger.Logger
	limiter *limit.IPRateLimiter
	book    pricing.Current
	est     advisor.Estimator
}

func HandleList(mux *mux.Router, d deps) {
	estimateH := &estimate.Handler{Log: d.log}
	importH := &importer.Handler{Log: d.log}
	pricingH := &pricing.Handler{Book: d.book, Log: d.log}
	advisorH := &advisor.Handler{Est: d.est, Log: d.log}

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(d.limiter.LimitMiddleware)
	// A subrouter with middleware reports method mismatches as 404 unless
	// it has its own handler.
	api.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	api.HandleFunc("/variants", estimateH.Variants).Methods("GET")
	api.HandleFunc("/materials", estimateH.Materials).Methods("POST")
	api.HandleFunc("/materials/batch", estimateH.Batch).Methods("POST")
	api.HandleFunc("/materials/import", importH.Import).Methods("POST")

	api.HandleFunc("/cost", pricingH.Cost).Methods("POST")
	api.HandleFunc("/prices", pricingH.Prices).Methods("GET")

	api.HandleFunc("/earthwork/estimate", advisorH.Earthwork).Methods("POST")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusMethodNotAllowed, respond.ErrorBody{Error: r.Method + " not allowed on " + r.URL.Path})
}

// openPriceBook picks the database when one is configured, then the price
// file. With neither, cost requests must carry their own prices.
func openPriceBook(ctx context.Context, cfg config.Config, lg *logger.Logger) (*pricebook.Book, *sql.DB, error) {
	var src pricebook.Source
	var db *sql.DB
	switch {
	case cfg.UseDatabase():
		var err error
		db, err = repo.InitDB(cfg.DBDriver, cfg.DBURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repo.Migrate(db, cfg.DBDriver); err != nil {
			db.Close()
			return nil, nil, err
		}
		src = repo.NewPriceRepository(db, cfg.DBDriver)
		lg.Info("unit prices from %s database", cfg.DBDriver)
	case cfg.PriceFile != "":
		src = pricebook.FileSource{Path: cfg.PriceFile}
		lg.Info("unit prices from %s", cfg.PriceFile)
	default:
		lg.Warn("no price source configured; /api/cost needs prices in the request")
		return nil, nil, nil
	}

	book := pricebook.New(src, lg)
	if err := book.Refresh(ctx); err != nil {
		lg.Warn("starting with an empty price book")
	}
	if err := book.Start(cfg.RefreshCron); err != nil {
		if db != nil {
			db.Close()
		}
		return nil, nil, err
	}
	return book, db, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	lg := logger.New(logger.ParseLevel(cfg.LogLevel), os.Stderr)

	book, db, err := openPriceBook(ctx, cfg, lg)
	if err != nil {
		log.Fatal(err)
	}
	if db != nil {
		defer db.Close()
	}

	d := deps{
		log:     lg,
		limiter: limit.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	}
	if book != nil {
		defer book.Stop()
		d.book = book
	}
	if cfg.UseAdvisor() {
		gpt := advisor.NewGPTEstimator(cfg.AdvisorEndpoint, cfg.AdvisorAPIKey, lg,
			advisor.WithModel(cfg.AdvisorModel),
			advisor.WithHTTPTimeout(cfg.AdvisorTimeout),
		)
		d.est = advisor.WithRetry(gpt, cfg.AdvisorRetries, 0, cfg.AdvisorTimeout)
	}

	mux := mux.NewRouter()
	HandleList(mux, d)
	handler := CORS(mux)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		t := time.NewTicker(10 * time.Minute)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if n := d.limiter.Prune(30 * time.Minute); n > 0 {
					lg.Debug("pruned %d idle rate limiters", n)
				}
			}
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		lg.Info("listening on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("server: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	lg.Info("shutdown signal received")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		lg.Error("shutdown: %v", err)
	}
	wg.Wait()
	lg.Info("server stopped")
}
