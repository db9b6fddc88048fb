// Command storefront is a terminal client for the herbal garden shop. It
// loads the catalog from the API (or the embedded snapshot when offline),
// keeps a cart persisted between runs, and walks through checkout.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/herbalgarden/storefront/internal/cart"
	"github.com/herbalgarden/storefront/internal/client"
	"github.com/herbalgarden/storefront/internal/domain"
)

func main() {
	apiURL := flag.String("api", "http://localhost:5000", "storefront API base URL")
	dataDir := flag.String("data", defaultDataDir(), "directory for the persisted cart")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	ctx := context.Background()
	api := client.New(*apiURL)

	products, err := api.LoadProducts(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "unable to load products:", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "unable to create data dir:", err)
		os.Exit(1)
	}

	manager := cart.NewManager(cart.NewCatalog(products), cart.NewFileStore(*dataDir))
	manager.Subscribe(func(e cart.Event) {
		switch e.Kind {
		case cart.EventItemAdded:
			fmt.Println("Product added to cart!")
		case cart.EventCartCleared:
			fmt.Println("Cart cleared.")
		}
	})
	manager.Restore()

	fmt.Printf("Herbal Garden storefront: %d products loaded, %d item(s) in cart\n", len(products), manager.ItemCount())
	fmt.Println(`Commands: products, search <q>, add <id>, plus <id>, minus <id>, cart, checkout, contact, health, quit`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "products":
			printProducts(products)
		case "search":
			results, err := api.SearchProducts(ctx, arg)
			if err != nil {
				fmt.Println("search failed:", err)
				continue
			}
			printProducts(results)
		case "add":
			before := manager.ItemCount()
			manager.Add(arg)
			if manager.ItemCount() == before {
				fmt.Println("unknown product:", arg)
			}
		case "plus":
			manager.ChangeQuantity(arg, +1)
		case "minus":
			manager.ChangeQuantity(arg, -1)
		case "cart":
			printCart(manager)
		case "checkout":
			checkout(ctx, scanner, api, manager)
		case "contact":
			contact(ctx, scanner, api)
		case "health":
			h, err := api.Health(ctx)
			if err != nil {
				fmt.Println("backend not reachable:", err)
				continue
			}
			fmt.Printf("status=%s database=%s\n", h.Status, h.Database)
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command:", cmd)
		}
	}
}

func printProducts(products []domain.Product) {
	if len(products) == 0 {
		fmt.Println("No products available.")
		return
	}
	for _, p := range products {
		fmt.Printf("  [%d] %-14s $%.2f  %s (%.1f★, %d reviews)\n",
			p.CatalogID, p.Name, p.Price, p.Category, p.Rating.Stars, p.Rating.ReviewCount)
	}
}

func printCart(m *cart.Manager) {
	items := m.Items()
	if len(items) == 0 {
		fmt.Println("Cart is empty.")
		return
	}
	for _, it := range items {
		fmt.Printf("  %-14s ×%d  $%.2f\n", it.Name, it.Quantity, it.Price*float64(it.Quantity))
	}
	fmt.Printf("Total: $%.2f (%d items)\n", m.Total(), m.ItemCount())
}

func checkout(ctx context.Context, scanner *bufio.Scanner, api *client.Client, m *cart.Manager) {
	if m.ItemCount() == 0 {
		fmt.Println("Cart is empty, nothing to check out.")
		return
	}

	customer := domain.Customer{
		Name:    prompt(scanner, "Full name: "),
		Email:   prompt(scanner, "Email: "),
		Phone:   prompt(scanner, "Phone (optional): "),
		Address: prompt(scanner, "Shipping address: "),
	}
	payment := domain.PaymentMethod(prompt(scanner, "Payment method [cod/online]: "))

	submission := m.ToOrderSubmission(customer, payment)
	confirmation, err := api.PlaceOrder(ctx, submission)
	if err != nil {
		fmt.Println("order failed:", err)
		return
	}

	fmt.Printf("Order placed! ID %s, total $%.2f\n", confirmation.OrderID, confirmation.TotalAmount)
	m.Clear()
}

func contact(ctx context.Context, scanner *bufio.Scanner, api *client.Client) {
	c := domain.Contact{
		Name:    prompt(scanner, "Name: "),
		Email:   prompt(scanner, "Email: "),
		Subject: prompt(scanner, "Subject: "),
		Message: prompt(scanner, "Message: "),
	}

	receipt, err := api.SubmitContact(ctx, c)
	if err != nil {
		fmt.Println("submission failed:", err)
		return
	}
	fmt.Println("Thank you! Your message has been sent. Reference:", receipt.ID)
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "herbal-garden")
}
