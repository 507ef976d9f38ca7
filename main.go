package main

import (
	"context"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mager/decadal/config"
	"github.com/mager/decadal/dataset"
	"github.com/mager/decadal/handler/correlation"
	"github.com/mager/decadal/handler/decades"
	"github.com/mager/decadal/handler/fingerprint"
	"github.com/mager/decadal/handler/health"
	"github.com/mager/decadal/handler/topsongs"
	"github.com/mager/decadal/handler/trends"
	"github.com/mager/decadal/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Route is an http.Handler that knows the mux pattern
// under which it will be registered.
type Route interface {
	http.Handler

	// Pattern reports the path at which this is registered.
	Pattern() string
}

//	@title			Decadal
//	@version		1.0
//	@description	Chart data for how popular-music audio features evolved by decade

// @host		localhost:8080
// @BasePath	/
func main() {
	fx.New(
		fx.Provide(
			fx.Annotate(NewHTTPServer, fx.ParamTags(``, ``, ``, `group:"routes"`)),
			config.Options,
			logger.Options,
			dataset.Options,

			AsRoute(health.NewHealthHandler),
			AsRoute(decades.NewDecadesHandler),
			AsRoute(trends.NewTrendsHandler),
			AsRoute(fingerprint.NewFingerprintHandler),
			AsRoute(topsongs.NewTopSongsHandler),
			AsRoute(correlation.NewCorrelationHandler),
		),
		fx.Invoke(func(*http.Server) {}),
	).Run()
}

func NewHTTPServer(
	lc fx.Lifecycle,
	log *zap.SugaredLogger,
	cfg config.Config,
	routes []Route,
) *http.Server {
	r := mux.NewRouter()
	for _, route := range routes {
		r.Handle(route.Pattern(), route).Methods(http.MethodGet)
	}

	srv := &http.Server{Addr: cfg.ListenAddr, Handler: jsonMiddleware(r)}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Infof("Starting HTTP server at %s", srv.Addr)
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}

// AsRoute annotates the given constructor to state that
// it provides a route to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
