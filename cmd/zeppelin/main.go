// Command zeppelin is a small operational CLI for a Zeppelin server:
// health checks, namespace management and ad-hoc queries.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	zeppelin "github.com/zeppelin-db/zeppelin-go"
	"github.com/zeppelin-db/zeppelin-go/embedding"
	"github.com/zeppelin-db/zeppelin-go/internal/config"
	logpkg "github.com/zeppelin-db/zeppelin-go/internal/logger"
	"github.com/zeppelin-db/zeppelin-go/internal/version"
)

const usage = `usage: zeppelin [flags] <command> [args]

commands:
  health                          check server health
  ready                           check server readiness
  namespaces [prefix]             list namespaces
  create <name> <dimensions>      create a namespace
  get <name>                      show namespace metadata
  delete <name>                   delete a namespace
  query <name> <bm25-field> <text>  run a BM25 query
  search <name> <text>            embed text and run a similarity query

flags:
  -config path   YAML config file
  -json          JSON log output
`

func main() {
	configPath := flag.String("config", "", "YAML config file")
	jsonLogs := flag.Bool("json", false, "JSON log output")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	// Optional .env next to the working directory; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "zeppelin:", err)
		os.Exit(1)
	}

	logger, err := logpkg.New(cfg.Logging.Level, *jsonLogs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "zeppelin:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	logger.Debug("starting",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("base_url", cfg.Server.BaseURL),
	)

	opts := []zeppelin.Option{
		zeppelin.WithBaseURL(cfg.Server.BaseURL),
		zeppelin.WithTimeout(cfg.Server.Timeout()),
		zeppelin.WithHeaders(cfg.Server.Headers),
	}
	if cfg.Embedding.APIKey != "" {
		opts = append(opts, zeppelin.WithEmbedder(embedding.NewOpenAI(embedding.OpenAIConfig{
			APIKey:     cfg.Embedding.APIKey,
			BaseURL:    cfg.Embedding.BaseURL,
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Embedding.Dimensions,
		})))
	}

	client, err := zeppelin.New(opts...)
	if err != nil {
		logger.Fatal("create client", zap.Error(err))
	}
	defer client.Close()

	if err := run(context.Background(), client, args); err != nil {
		logger.Fatal("command failed", zap.String("command", args[0]), zap.Error(err))
	}
}

func run(ctx context.Context, client *zeppelin.Client, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "health":
		out, err := client.Health(ctx)
		if err != nil {
			return err
		}
		return print(out)
	case "ready":
		out, err := client.Ready(ctx)
		if err != nil {
			return err
		}
		return print(out)
	case "namespaces":
		var opts []zeppelin.ListOption
		if len(rest) > 0 {
			opts = append(opts, zeppelin.WithPrefix(rest[0]))
		}
		list, err := client.Namespaces().List(ctx, opts...)
		if err != nil {
			return err
		}
		return print(list)
	case "create":
		if len(rest) != 2 {
			return fmt.Errorf("create needs <name> <dimensions>")
		}
		var dims int
		if _, err := fmt.Sscanf(rest[1], "%d", &dims); err != nil {
			return fmt.Errorf("invalid dimensions %q", rest[1])
		}
		ns, err := client.Namespaces().Create(ctx, rest[0], dims)
		if err != nil {
			return err
		}
		return print(ns)
	case "get":
		if len(rest) != 1 {
			return fmt.Errorf("get needs <name>")
		}
		ns, err := client.Namespaces().Get(ctx, rest[0])
		if err != nil {
			return err
		}
		return print(ns)
	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("delete needs <name>")
		}
		return client.Namespaces().Delete(ctx, rest[0])
	case "query":
		if len(rest) < 3 {
			return fmt.Errorf("query needs <name> <bm25-field> <text>")
		}
		res, err := client.Search(rest[0]).Query(ctx, zeppelin.QueryRequest{
			RankBy: zeppelin.BM25(rest[1], strings.Join(rest[2:], " ")),
		})
		if err != nil {
			return err
		}
		return print(res)
	case "search":
		if len(rest) < 2 {
			return fmt.Errorf("search needs <name> <text>")
		}
		res, err := client.Search(rest[0]).QueryText(ctx, strings.Join(rest[1:], " "), zeppelin.QueryRequest{})
		if err != nil {
			return err
		}
		return print(res)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func print(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
