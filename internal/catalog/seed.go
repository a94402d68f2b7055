package catalog

// BuiltinProducts is the demo storefront inventory.
func BuiltinProducts() []Product {
	return []Product{
		{
			ID:         "e43638ce-6aa0-4b85-b27f-e1d07eb678c6",
			Name:       "Black and Gray Athletic Cotton Socks - 6 Pairs",
			Image:      "images/products/athletic-cotton-socks-6-pairs.jpg",
			PriceCents: 1090,
			Rating:     4.5,
			Keywords:   []string{"socks", "sports", "apparel"},
		},
		{
			ID:         "15b6fc6f-327a-4ec4-896f-486349e85a3d",
			Name:       "Intermediate Size Basketball",
			Image:      "images/products/intermediate-composite-basketball.jpg",
			PriceCents: 2095,
			Rating:     4,
			Keywords:   []string{"sports", "basketballs"},
		},
		{
			ID:         "83d4ca15-0f35-48f5-b7a3-1ea210004f2e",
			Name:       "Adults Plain Cotton T-Shirt - 2 Pack",
			Image:      "images/products/adults-plain-cotton-tshirt-2-pack-teal.jpg",
			PriceCents: 799,
			Rating:     4.5,
			Keywords:   []string{"tshirts", "apparel", "mens"},
		},
		{
			ID:         "54e0eccd-8f36-462b-b68a-8182611d9add",
			Name:       "Black 2-Slot Toaster",
			Image:      "images/products/black-2-slot-toaster.jpg",
			PriceCents: 1899,
			Rating:     5,
			Keywords:   []string{"toaster", "kitchen", "appliances"},
		},
		{
			ID:         "3ebe75dc-64d2-4137-8555-f8a8e90dac01",
			Name:       "6 Piece White Dinner Plate Set",
			Image:      "images/products/6-piece-white-dinner-plate-set.jpg",
			PriceCents: 2067,
			Rating:     4,
			Keywords:   []string{"plates", "kitchen", "dining"},
		},
		{
			ID:         "8c9c52b5-5a19-4bcb-a5d1-158a74287c53",
			Name:       "Plain Hooded Fleece Sweatshirt",
			Image:      "images/products/plain-hooded-fleece-sweatshirt-yellow.jpg",
			PriceCents: 2400,
			Rating:     4.5,
			Keywords:   []string{"hoodies", "sweaters", "apparel"},
		},
	}
}

// BuiltinDeliveryOptions mirrors the storefront's three shipping tiers.
// Option "1" is the free standard tier used as the default.
func BuiltinDeliveryOptions() []DeliveryOption {
	return []DeliveryOption{
		{ID: "1", DeliveryDays: 7, PriceCents: 0},
		{ID: "2", DeliveryDays: 3, PriceCents: 499},
		{ID: "3", DeliveryDays: 1, PriceCents: 999},
	}
}
