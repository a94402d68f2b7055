package storage

const (
	// Default cart collection. Additional carts live under their own keys,
	// e.g. KeyCartBusiness, and stay fully independent.
	KeyCart         = "cart"
	KeyCartBusiness = "cart-business"

	// All orders live under a single fixed key.
	KeyOrders = "orders"
)
