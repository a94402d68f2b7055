package catalog

import "strings"

type Product struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Image      string   `json:"image"`
	PriceCents int64    `json:"priceCents"`
	Rating     float64  `json:"rating"`
	Keywords   []string `json:"keywords"`
}

// Catalog is read-only product reference data. The stores never write to it;
// orders snapshot what they need from it at placement time.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

func NewCatalog(products []Product) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[string]Product, len(products)),
	}
	for _, p := range products {
		c.byID[p.ID] = p
	}
	return c
}

func (c *Catalog) Get(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns products in display order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Search matches the term against product names and keywords,
// case-insensitively.
func (c *Catalog) Search(term string) []Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return c.All()
	}
	var out []Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
			continue
		}
		for _, k := range p.Keywords {
			if strings.Contains(strings.ToLower(k), term) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
