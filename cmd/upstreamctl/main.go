package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Gunvolt24/cloak_gw/config"
	"github.com/Gunvolt24/cloak_gw/internal/domain"
	"github.com/Gunvolt24/cloak_gw/internal/upstream"
	"github.com/Gunvolt24/cloak_gw/pkg/logger"
	"github.com/joho/godotenv"
)

// fieldFlags - повторяемый флаг -f key=value; повтор ключа превращает значение в список.
type fieldFlags struct {
	order  []string
	values map[string][]string
}

func (f *fieldFlags) String() string {
	parts := make([]string, 0, len(f.order))
	for _, k := range f.order {
		parts = append(parts, k+"="+strings.Join(f.values[k], ","))
	}
	return strings.Join(parts, " ")
}

func (f *fieldFlags) Set(raw string) error {
	key, value, ok := strings.Cut(raw, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("field %q: want key=value", raw)
	}
	if f.values == nil {
		f.values = make(map[string][]string)
	}
	if _, seen := f.values[key]; !seen {
		f.order = append(f.order, key)
	}
	f.values[key] = append(f.values[key], value)
	return nil
}

// Fields - поля запроса: один раз указанный ключ скаляр, повторённый - список.
func (f *fieldFlags) Fields() domain.Fields {
	out := domain.NewFields()
	for _, k := range f.order {
		vals := f.values[k]
		if len(vals) == 1 {
			out.Set(k, vals[0])
			continue
		}
		out.Set(k, append([]string(nil), vals...))
	}
	return out
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "upstreamctl: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("upstreamctl", flag.ContinueOnError)
	endpoint := fs.String("e", "", "upstream endpoint, e.g. /flows/list")
	timeout := fs.Duration("timeout", 3*time.Minute, "overall deadline including retries")
	var fields fieldFlags
	fs.Var(&fields, "f", "request field key=value (repeat the key for a list)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*endpoint) == "" {
		return errors.New("endpoint is required (-e)")
	}

	_ = godotenv.Load(".env.local")
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	client := upstream.NewClient(upstream.Config{
		BaseURL:     cfg.Upstream.BaseURL,
		APIKey:      cfg.Upstream.APIKey,
		Timeout:     cfg.Upstream.Timeout,
		MaxAttempts: cfg.Upstream.MaxAttempts,
		BackoffStep: cfg.Upstream.BackoffStep,
	}, nil, logg)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	resp, err := client.Call(ctx, *endpoint, fields.Fields())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
