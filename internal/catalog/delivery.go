package catalog

type DeliveryOption struct {
	ID           string `json:"id"`
	DeliveryDays int    `json:"deliveryDays"`
	PriceCents   int64  `json:"priceCents"`
}

// Options is the immutable shipping-tier table. The first option is the
// standard tier new cart lines default to.
type Options struct {
	options []DeliveryOption
	byID    map[string]DeliveryOption
}

func NewOptions(options []DeliveryOption) *Options {
	o := &Options{
		options: options,
		byID:    make(map[string]DeliveryOption, len(options)),
	}
	for _, opt := range options {
		o.byID[opt.ID] = opt
	}
	return o
}

func (o *Options) Get(id string) (DeliveryOption, bool) {
	opt, ok := o.byID[id]
	return opt, ok
}

// All returns options in display order.
func (o *Options) All() []DeliveryOption {
	out := make([]DeliveryOption, len(o.options))
	copy(out, o.options)
	return out
}

// Default is the standard option assigned when a line item is created.
func (o *Options) Default() DeliveryOption {
	if len(o.options) == 0 {
		return DeliveryOption{}
	}
	return o.options[0]
}
