package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rakapradita/go-storefront/internal/cart"
	"github.com/rakapradita/go-storefront/internal/catalog"
	"github.com/rakapradita/go-storefront/internal/checkout"
	"github.com/rakapradita/go-storefront/internal/config"
	"github.com/rakapradita/go-storefront/internal/logx"
	"github.com/rakapradita/go-storefront/internal/money"
	"github.com/rakapradita/go-storefront/internal/order"
	"github.com/rakapradita/go-storefront/internal/pricing"
	"github.com/rakapradita/go-storefront/internal/storage"
	"github.com/rakapradita/go-storefront/internal/tracking"
)

const usage = `usage: storefront <command> [flags]

commands:
  products      list the product catalog (-search <term>)
  cart          show the cart with a payment summary
  add           add a product (-product <id> -qty <n>)
  remove        remove a product (-product <id>)
  qty           set a line quantity (-product <id> -qty <n>)
  ship          set a line's delivery option (-product <id> -option <id>)
  checkout      place the order (-name -line1 -city -state -zip -payment)
  orders        list placed orders, newest first
  track         show one item's tracking info (-order <id> -product <id>)
  buy-again     re-add a past order item (-order <id> -product <id>)
  clear-orders  wipe the order history
`

type app struct {
	ctx      context.Context
	cart     *cart.Cart
	orders   *order.Store
	products *catalog.Catalog
	options  *catalog.Options
	checkout *checkout.Service
	taxRate  float64
}

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logx.New(cfg.ServiceName, cfg.LogLevel)

	backend, err := storage.Open(cfg.StorageBackend, cfg.DataDir, cfg.RedisAddr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "storage:", err)
		os.Exit(1)
	}
	if closer, ok := backend.(io.Closer); ok {
		defer closer.Close()
	}

	ctx := context.Background()
	products := catalog.NewCatalog(catalog.BuiltinProducts())
	options := catalog.NewOptions(catalog.BuiltinDeliveryOptions())
	ct := cart.New(ctx, cfg.CartKey, backend, options, log)
	orders := order.NewStore(backend, log)

	co, err := checkout.NewService(ct, orders, products, options, cfg.TaxRate, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "checkout:", err)
		os.Exit(1)
	}

	a := &app{
		ctx:      ctx,
		cart:     ct,
		orders:   orders,
		products: products,
		options:  options,
		checkout: co,
		taxRate:  cfg.TaxRate,
	}

	// before rendering order state, bring item statuses up to date the way
	// a page load would
	refresh := func() {
		tracking.NewMonitor(orders, cfg.RecheckInterval, log).Sweep(ctx)
	}

	switch os.Args[1] {
	case "products":
		a.cmdProducts(os.Args[2:])
	case "cart":
		a.cmdCart()
	case "add":
		a.cmdAdd(os.Args[2:])
	case "remove":
		a.cmdRemove(os.Args[2:])
	case "qty":
		a.cmdQty(os.Args[2:])
	case "ship":
		a.cmdShip(os.Args[2:])
	case "checkout":
		a.cmdCheckout(os.Args[2:])
	case "orders":
		refresh()
		a.cmdOrders()
	case "track":
		refresh()
		a.cmdTrack(os.Args[2:])
	case "buy-again":
		a.cmdBuyAgain(os.Args[2:])
	case "clear-orders":
		a.cmdClearOrders()
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func (a *app) cmdProducts(args []string) {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	search := fs.String("search", "", "filter by name or keyword")
	fs.Parse(args)

	for _, p := range a.products.Search(*search) {
		fmt.Printf("%s  $%s  %.1f★  %s\n", p.ID, money.Format(p.PriceCents), p.Rating, p.Name)
	}
}

func (a *app) cmdCart() {
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return
	}

	lines := make([]pricing.Line, 0, len(items))
	for _, item := range items {
		p, ok := a.products.Get(item.ProductID)
		if !ok {
			fmt.Printf("%dx %s (no longer in catalog)\n", item.Quantity, item.ProductID)
			continue
		}
		opt, _ := a.options.Get(item.DeliveryOptionID)
		fmt.Printf("%dx %s  $%s each  ships in %dd\n", item.Quantity, p.Name, money.Format(p.PriceCents), opt.DeliveryDays)
		lines = append(lines, pricing.Line{
			PriceCents:       p.PriceCents,
			Quantity:         item.Quantity,
			DeliveryOptionID: item.DeliveryOptionID,
		})
	}

	totals := pricing.CalculateTotals(lines, a.options, a.taxRate)
	fmt.Printf("\nitems (%d):      $%s\n", a.cart.TotalQuantity(), money.Format(totals.ItemsSubtotal))
	fmt.Printf("shipping:       $%s\n", money.Format(totals.ShippingTotal))
	fmt.Printf("estimated tax:  $%s\n", money.Format(totals.TaxCents))
	fmt.Printf("order total:    $%s\n", money.Format(totals.TotalCents))
}

func (a *app) cmdAdd(args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	product := fs.String("product", "", "product id")
	qty := fs.Int("qty", 1, "quantity to add")
	fs.Parse(args)

	if !a.cart.Add(a.ctx, *product, *qty) {
		fmt.Fprintln(os.Stderr, "add failed")
		os.Exit(1)
	}
	fmt.Printf("cart now holds %d items\n", a.cart.TotalQuantity())
}

func (a *app) cmdRemove(args []string) {
	fs := flag.NewFlagSet("remove", flag.ExitOnError)
	product := fs.String("product", "", "product id")
	fs.Parse(args)

	if !a.cart.Remove(a.ctx, *product) {
		fmt.Println("product was not in the cart")
		return
	}
	fmt.Printf("cart now holds %d items\n", a.cart.TotalQuantity())
}

func (a *app) cmdQty(args []string) {
	fs := flag.NewFlagSet("qty", flag.ExitOnError)
	product := fs.String("product", "", "product id")
	qty := fs.Int("qty", 1, "new quantity (0 removes the line)")
	fs.Parse(args)

	if !a.cart.UpdateQuantity(a.ctx, *product, *qty) && *qty > 0 {
		fmt.Fprintln(os.Stderr, "quantity update failed")
		os.Exit(1)
	}
	fmt.Printf("cart now holds %d items\n", a.cart.TotalQuantity())
}

func (a *app) cmdShip(args []string) {
	fs := flag.NewFlagSet("ship", flag.ExitOnError)
	product := fs.String("product", "", "product id")
	option := fs.String("option", "", "delivery option id")
	fs.Parse(args)

	if !a.cart.UpdateDeliveryOption(a.ctx, *product, *option) {
		fmt.Fprintln(os.Stderr, "delivery option update failed")
		os.Exit(1)
	}
	opt, _ := a.options.Get(*option)
	fmt.Printf("shipping in %dd for $%s\n", opt.DeliveryDays, money.Format(opt.PriceCents))
}

func (a *app) cmdCheckout(args []string) {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	name := fs.String("name", "", "recipient name")
	line1 := fs.String("line1", "", "street address")
	city := fs.String("city", "", "city")
	state := fs.String("state", "", "state")
	zip := fs.String("zip", "", "postal code")
	payment := fs.String("payment", "", "payment method label")
	fs.Parse(args)

	saved, err := a.checkout.PlaceOrder(a.ctx, checkout.PlaceOrderInput{
		ShippingAddress: order.Address{
			Name: *name, Line1: *line1, City: *city, State: *state, PostalCode: *zip,
		},
		PaymentMethod: *payment,
	})
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			fmt.Fprintln(os.Stderr, "your cart is empty; add items before checking out")
		} else {
			fmt.Fprintln(os.Stderr, "checkout failed:", err)
		}
		os.Exit(1)
	}
	fmt.Printf("order %s placed, total $%s\n", saved.ID, money.Format(saved.Totals.TotalCents))
}

func (a *app) cmdOrders() {
	orders := a.orders.OrdersByDate(a.ctx)
	if len(orders) == 0 {
		fmt.Println("you don't have any orders yet")
		return
	}
	for _, o := range orders {
		fmt.Printf("order %s  placed %s  total $%s\n", o.ID, o.OrderDate.Format("January 2, 2006"), money.Format(o.Totals.TotalCents))
		for _, item := range o.Items {
			verb := "arriving"
			if item.Status == order.StatusDelivered {
				verb = "delivered"
			}
			fmt.Printf("  %dx %s  [%s]  %s %s\n", item.Quantity, item.ProductName, item.Status, verb, item.DeliveryDate)
		}
	}
}

func (a *app) cmdTrack(args []string) {
	fs := flag.NewFlagSet("track", flag.ExitOnError)
	orderID := fs.String("order", "", "order id")
	product := fs.String("product", "", "product id")
	fs.Parse(args)

	item, err := a.orders.TrackingInfo(a.ctx, *orderID, *product)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tracking info not found")
		os.Exit(1)
	}
	fmt.Printf("%s\nquantity: %d\nstatus:   %s\ndelivery: %s\n", item.ProductName, item.Quantity, item.Status, item.DeliveryDate)
}

func (a *app) cmdBuyAgain(args []string) {
	fs := flag.NewFlagSet("buy-again", flag.ExitOnError)
	orderID := fs.String("order", "", "order id")
	product := fs.String("product", "", "product id")
	fs.Parse(args)

	if !a.checkout.BuyAgain(a.ctx, *orderID, *product) {
		fmt.Fprintln(os.Stderr, "buy again failed")
		os.Exit(1)
	}
	fmt.Printf("added to cart, %d items total\n", a.cart.TotalQuantity())
}

func (a *app) cmdClearOrders() {
	if err := a.orders.Clear(a.ctx); err != nil {
		fmt.Fprintln(os.Stderr, "clear failed:", err)
		os.Exit(1)
	}
	fmt.Println("order history cleared")
}
