package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"azushop-client/internal/config"
	"azushop-client/internal/notify"
	"azushop-client/internal/observability"
	"azushop-client/internal/storefront"
)

const usage = `shopctl - storefront client driver

Usage:
  shopctl health                     probe backend connectivity
  shopctl login <email> <password>   sign in and persist the session
  shopctl logout                     sign out and clear the session
  shopctl profile                    show the signed-in user
  shopctl products [keyword]         list catalog products
  shopctl product <id>               show one product
  shopctl categories                 list categories
  shopctl orders                     list the signed-in user's orders
`

func main() {
	cfg := config.Load()

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "warn"
	}
	observability.InitLogger(logLevel, "text")

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	sf := storefront.NewFromConfig(cfg)

	sf.Subscribe(func(e notify.Event) {
		slog.Info("auth event", slog.String("type", string(e.Type)))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, sf, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if sf.UsingDemoData() {
		fmt.Fprintln(os.Stderr, "note: backend unreachable, showing demo data")
	}
}

func run(ctx context.Context, sf *storefront.Storefront, command string, args []string) error {
	switch command {
	case "health":
		if err := sf.Client().Health(ctx); err != nil {
			return fmt.Errorf("backend unreachable: %w", err)
		}
		fmt.Println("backend is reachable")
		return nil

	case "login":
		if len(args) != 2 {
			return fmt.Errorf("usage: shopctl login <email> <password>")
		}
		user, err := sf.Login(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("signed in as %s <%s>\n", user.Username, user.Email)
		return nil

	case "logout":
		sf.Logout(ctx)
		fmt.Println("signed out")
		return nil

	case "profile":
		user, err := sf.Client().Users().Profile(ctx)
		if err != nil {
			return err
		}
		return printJSON(user)

	case "products":
		keyword := ""
		if len(args) > 0 {
			keyword = args[0]
		}
		page, err := sf.Products(ctx, keyword)
		if err != nil {
			return err
		}
		for _, product := range page.Products {
			fmt.Printf("%-40s %9.2f  %s\n", product.Name, product.Price, product.Brand)
		}
		return nil

	case "product":
		if len(args) != 1 {
			return fmt.Errorf("usage: shopctl product <id>")
		}
		product, err := sf.Product(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(product)

	case "categories":
		categories, err := sf.Categories(ctx)
		if err != nil {
			return err
		}
		for _, category := range categories {
			fmt.Println(category.Name)
		}
		return nil

	case "orders":
		orders, err := sf.Client().Orders().Mine(ctx)
		if err != nil {
			return err
		}
		return printJSON(orders)

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
