// Command metroroute searches routes over a transit map.
//
// Usage:
//
//	metroroute serve    [-map file]
//	metroroute route    -map file -from id -to id [-algorithm astar] [-preference time] [-trace]
//	metroroute generate -rows n -cols n [-spacing 100] [-velocity 10] [-transfer 30] [-seed n] [-out file]
//
// serve reads its settings from METROROUTE_* variables (and .env); -map
// overrides METROROUTE_MAP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/metroroute/builder"
	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/internal/config"
	"github.com/katalvlaran/metroroute/internal/server"
	"github.com/katalvlaran/metroroute/mapfile"
	"github.com/katalvlaran/metroroute/search"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}

	var err error
	switch args[0] {
	case "serve":
		err = serve(args[1:], stderr)
	case "route":
		err = route(args[1:], stdout, stderr)
	case "generate":
		err = generate(args[1:], stdout, stderr)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "metroroute: unknown command %q\n", args[0])
		usage(stderr)
		return exitUsage
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, "metroroute:", err)
		return exitUsage
	default:
		fmt.Fprintln(stderr, "metroroute:", err)
		return exitError
	}
}

var errUsage = errors.New("usage")

func usage(w io.Writer) {
	fmt.Fprintln(w, `usage:
  metroroute serve    [-map file]
  metroroute route    -map file -from id -to id [-algorithm astar] [-preference time] [-trace]
  metroroute generate -rows n -cols n [-spacing 100] [-velocity 10] [-transfer 30] [-seed n] [-out file]`)
}

func serve(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mapPath := fs.String("map", "", "YAML map file (overrides METROROUTE_MAP)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *mapPath != "" {
		cfg.MapPath = *mapPath
	}
	if err = cfg.RequireMap(); err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	log := slog.Default().With(slog.String("component", "cli"))

	m, err := mapfile.Load(cfg.MapPath)
	if err != nil {
		return err
	}
	log.Info("map loaded", slog.String("path", cfg.MapPath),
		slog.Int("stations", m.StationCount()), slog.Int("connections", m.ConnectionCount()))

	gin.SetMode(gin.ReleaseMode)
	srv, err := server.New(m, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}

func route(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("route", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mapPath := fs.String("map", "", "YAML map file")
	from := fs.Int("from", -1, "origin station id")
	to := fs.Int("to", -1, "destination station id")
	algorithm := fs.String("algorithm", "astar", "dfs | bfs | ucs | astar")
	preference := fs.String("preference", "time", "adjacency | time | distance | transfers (or 0-3)")
	trace := fs.Bool("trace", false, "print every expanded path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *mapPath == "" || *from < 0 || *to < 0 {
		return fmt.Errorf("%w: route needs -map, -from and -to", errUsage)
	}

	strategy, err := search.ParseStrategy(*algorithm)
	if err != nil {
		return err
	}
	pref, err := search.ParsePreference(*preference)
	if err != nil {
		return err
	}
	m, err := mapfile.Load(*mapPath)
	if err != nil {
		return err
	}

	opts := []search.Option{search.WithPreference(pref)}
	if *trace {
		opts = append(opts, search.WithOnExpand(func(p *search.Path) {
			fmt.Fprintf(stdout, "expand %s  g=%g h=%g\n", p, p.G, p.H)
		}))
	}
	res, err := search.Search(m, core.StationID(*from), core.StationID(*to), strategy, opts...)
	if err != nil {
		return err
	}
	if !res.Found {
		fmt.Fprintf(stdout, "no route from %d to %d (%d expansions)\n", *from, *to, res.Expansions)
		return nil
	}

	names := make([]string, 0, res.Path.Len())
	for _, id := range res.Path.Route() {
		st, err := m.Station(id)
		if err != nil {
			return err
		}
		names = append(names, fmt.Sprintf("%s [%s]", st.Name, st.Line))
	}
	fmt.Fprintf(stdout, "route: %s\n", res.Path)
	fmt.Fprintf(stdout, "stops: %s\n", strings.Join(names, " > "))
	fmt.Fprintf(stdout, "cost: %g (%s, %s)\n", res.Path.G, strategy, pref)
	fmt.Fprintf(stdout, "expansions: %d\n", res.Expansions)

	return nil
}

func generate(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rows := fs.Int("rows", 0, "number of horizontal lines")
	cols := fs.Int("cols", 0, "number of vertical lines")
	spacing := fs.Float64("spacing", 100, "distance between stations")
	velocity := fs.Float64("velocity", builder.DefaultVelocity, "line velocity")
	transfer := fs.Float64("transfer", builder.DefaultTransferTime, "interchange time in seconds")
	seed := fs.Int64("seed", 0, "randomize travel times with this seed (0 = exact times)")
	out := fs.String("out", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !(*velocity > 0) {
		return fmt.Errorf("%w: -velocity must be > 0", errUsage)
	}

	bopts := []builder.BuilderOption{builder.WithVelocity(*velocity)}
	if *seed != 0 {
		bopts = append(bopts, builder.WithSeed(*seed), builder.WithTimeFactor(builder.UniformFactorFn(1, 1.5)))
	}
	m, err := builder.BuildMap(bopts, builder.Grid(*rows, *cols, *spacing), builder.Interchanges(*transfer))
	if err != nil {
		return err
	}

	if *out == "" {
		return mapfile.Encode(stdout, m)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err = mapfile.Encode(f, m); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
