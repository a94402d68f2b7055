package order

// Status is an order item's fulfillment stage. It only ever advances.
type Status string

const (
	StatusPreparing Status = "Preparing"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
)

var validNext = map[Status]map[Status]bool{
	StatusPreparing: {StatusShipped: true, StatusDelivered: true},
	StatusShipped:   {StatusDelivered: true},
	StatusDelivered: {},
}

// CanTransition reports whether moving from one status to the next is a
// forward step. Delivered is terminal.
func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

func (s Status) Valid() bool {
	_, ok := validNext[s]
	return ok
}
