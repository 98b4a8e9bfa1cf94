package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saeidalz13/battleship-solo/api"
	"github.com/saeidalz13/battleship-solo/db"
	"github.com/saeidalz13/battleship-solo/db/sqlc"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	"github.com/saeidalz13/battleship-solo/internal/metrics"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

func main() {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("no .env file loaded:", err)
		}
	}

	// Every flag can also be set through the environment
	// variable of the same name in upper case (e.g. PORT)
	var (
		stage       = flag.String("stage", StageDev, "development stage, dev or prod")
		port        = flag.Int("port", 9191, "port to listen on")
		databaseUrl = flag.String("database_url", "", "postgres url for analytics, analytics are off when empty")
	)
	flag.Parse()

	if *stage != StageDev && *stage != StageProd {
		panic(cerr.ErrInvalidStage(*stage))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []api.Option{
		api.WithMetrics(metrics.NewCollector(prometheus.DefaultRegisterer)),
	}

	var psqlDb *sql.DB
	if *databaseUrl != "" {
		psqlDb = db.MustConnectToDb(*databaseUrl)
		defer psqlDb.Close()
		opts = append(opts, api.WithQuerier(sqlc.New(psqlDb)))
	} else {
		log.Println("DATABASE_URL not set, analytics disabled")
	}

	sessionManager := mc.NewBattleshipSessionManager()
	go sessionManager.CleanupPeriodically(ctx)

	rp := api.NewRequestProcessor(sessionManager, opts...)

	router := mux.NewRouter()
	router.Handle("/battleship", rp).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	server := &http.Server{
		Addr:              "0.0.0.0:" + strconv.Itoa(*port),
		Handler:           router,
		ReadHeaderTimeout: time.Second * 5,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Println("shutdown:", err)
		}
	}()

	log.Printf("Listening to port %d (stage: %s)\n", *port, *stage)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalln(err)
	}
}
