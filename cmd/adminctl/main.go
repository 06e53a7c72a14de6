package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/TemirB/bakeflow-admin/internal/backend"
	"github.com/TemirB/bakeflow-admin/internal/config"
	"github.com/TemirB/bakeflow-admin/internal/domain"
	"github.com/TemirB/bakeflow-admin/internal/i18n"
	"github.com/TemirB/bakeflow-admin/internal/pkg/breaker"
	"github.com/TemirB/bakeflow-admin/internal/seen"
	"github.com/TemirB/bakeflow-admin/internal/storage"
)

type cli struct {
	Seen   seenCmd   `cmd:"" help:"Inspect or edit the seen-order set."`
	Lang   langCmd   `cmd:"" help:"Show or change the console language."`
	Orders ordersCmd `cmd:"" help:"Talk to the bakery backend."`
	Export exportCmd `cmd:"" help:"Dump the console's local state as YAML."`
}

type env struct {
	cfg    config.Config
	logger *zap.Logger
	out    io.Writer
}

type seenCmd struct {
	List  seenListCmd  `cmd:"" default:"1" help:"Print seen order ids."`
	Mark  seenMarkCmd  `cmd:"" help:"Mark order ids as seen."`
	Reset seenResetCmd `cmd:"" help:"Forget every seen order; the next poll re-baselines."`
}

type seenListCmd struct{}

type seenMarkCmd struct {
	IDs []int64 `arg:"" name:"id" help:"Order ids."`
}

type seenResetCmd struct {
	Yes bool `help:"Do not ask for confirmation."`
}

type langCmd struct {
	Set string `arg:"" optional:"" help:"New language (en or my)."`
}

type ordersCmd struct {
	List    ordersListCmd    `cmd:"" default:"1" help:"List orders with their seen flag."`
	Advance ordersAdvanceCmd `cmd:"" help:"Move an order to its next status."`
}

type ordersListCmd struct {
	Status string `help:"Only orders with this status."`
}

type ordersAdvanceCmd struct {
	ID int64 `arg:"" help:"Order id."`
}

type exportCmd struct{}

func main() {
	cfg := config.Load()
	ctx := kong.Parse(&cli{},
		kong.Name("adminctl"),
		kong.Description("Operator utility for the BakeFlow admin console."),
		kong.UsageOnError(),
	)
	err := ctx.Run(context.Background(), &env{cfg: cfg, logger: zap.NewNop(), out: os.Stdout})
	ctx.FatalIfErrorf(err)
}

func (e *env) withStore(ctx context.Context, fn func(storage.Store) error) error {
	store, err := storage.Open(ctx, e.cfg, e.logger)
	if err != nil {
		return fmt.Errorf("adminctl: open storage: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func (cmd *seenListCmd) Run(ctx context.Context, e *env) error {
	return e.withStore(ctx, func(store storage.Store) error {
		t := seen.NewTracker(store, e.logger)
		defer t.Close()
		t.Load(ctx)
		ids := t.IDs()
		fmt.Fprintf(e.out, "%d seen orders\n", len(ids))
		for _, id := range ids {
			fmt.Fprintln(e.out, id)
		}
		return nil
	})
}

func (cmd *seenMarkCmd) Run(ctx context.Context, e *env) error {
	return e.withStore(ctx, func(store storage.Store) error {
		t := seen.NewTracker(store, e.logger)
		t.Load(ctx)
		t.MarkSeen(cmd.IDs...)
		t.Close()
		fmt.Fprintf(e.out, "%d seen orders\n", t.Len())
		return nil
	})
}

func (cmd *seenResetCmd) Run(ctx context.Context, e *env) error {
	if !cmd.Yes {
		return fmt.Errorf("adminctl: reset re-baselines notifications; pass --yes to confirm")
	}
	return e.withStore(ctx, func(store storage.Store) error {
		if err := store.Set(ctx, seen.StorageKey, "[]"); err != nil {
			return fmt.Errorf("adminctl: reset seen orders: %w", err)
		}
		fmt.Fprintln(e.out, "seen orders cleared")
		return nil
	})
}

func (cmd *langCmd) Run(ctx context.Context, e *env) error {
	return e.withStore(ctx, func(store storage.Store) error {
		pref := i18n.NewPreference(store, e.cfg.UI.Lang, e.logger)
		pref.Load(ctx)
		if cmd.Set == "" {
			fmt.Fprintln(e.out, pref.Lang())
			return nil
		}
		lang, err := pref.Set(ctx, cmd.Set)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.out, lang)
		return nil
	})
}

func (e *env) client() (*backend.Client, error) {
	return backend.New(e.cfg.Backend, breaker.New(e.cfg.Breaker), e.cfg.Retry, e.logger)
}

func (cmd *ordersListCmd) Run(ctx context.Context, e *env) error {
	api, err := e.client()
	if err != nil {
		return err
	}
	orders, err := api.ListOrders(ctx)
	if err != nil {
		return fmt.Errorf("adminctl: list orders: %w", err)
	}

	return e.withStore(ctx, func(store storage.Store) error {
		t := seen.NewTracker(store, e.logger)
		defer t.Close()
		t.Load(ctx)

		for _, o := range orders {
			if cmd.Status != "" && string(o.Status) != cmd.Status {
				continue
			}
			flag := " "
			if !t.Has(o.ID) {
				flag = "*"
			}
			fmt.Fprintf(e.out, "%s #%-5d %-10s %-20s %s\n", flag, o.ID, o.Status, o.Customer(), o.ItemSummary())
		}
		return nil
	})
}

func (cmd *ordersAdvanceCmd) Run(ctx context.Context, e *env) error {
	api, err := e.client()
	if err != nil {
		return err
	}
	orders, err := api.ListOrders(ctx)
	if err != nil {
		return fmt.Errorf("adminctl: list orders: %w", err)
	}
	idx := len(orders)
	for i, o := range orders {
		if o.ID == cmd.ID {
			idx = i
			break
		}
	}
	if idx == len(orders) {
		return fmt.Errorf("adminctl: order %d: %w", cmd.ID, domain.ErrNotFound)
	}
	next, ok := orders[idx].Status.Next()
	if !ok {
		return fmt.Errorf("adminctl: order %d: %w", cmd.ID, domain.ErrNoTransition)
	}
	res, err := api.UpdateOrderStatus(ctx, cmd.ID, next)
	if err != nil {
		return fmt.Errorf("adminctl: %w", err)
	}
	fmt.Fprintf(e.out, "order %d -> %s (customer notified: %t)\n", cmd.ID, next, res.NotificationSent)
	return nil
}

type exportDoc struct {
	Language    string  `yaml:"language"`
	SeenOrders  []int64 `yaml:"seen_orders"`
	StorageKind string  `yaml:"storage_driver"`
}

func (cmd *exportCmd) Run(ctx context.Context, e *env) error {
	return e.withStore(ctx, func(store storage.Store) error {
		doc := exportDoc{StorageKind: e.cfg.Storage.Driver, SeenOrders: []int64{}}
		if raw, err := store.Get(ctx, i18n.StorageKey); err == nil {
			doc.Language = strings.TrimSpace(raw)
		}
		if raw, err := store.Get(ctx, seen.StorageKey); err == nil {
			_ = json.Unmarshal([]byte(raw), &doc.SeenOrders)
		}
		sort.Slice(doc.SeenOrders, func(i, j int) bool { return doc.SeenOrders[i] < doc.SeenOrders[j] })

		enc := yaml.NewEncoder(e.out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(doc)
	})
}
