package constant

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
	OrderStatusNew        OrderStatus = "New"

	// OrderStatusDefault is the legacy lowercase status written by the
	// storefront submission path. The backend accepts it but it is not a
	// valid target for an admin transition.
	OrderStatusDefault = "pending"
)

// PaymentMethodCash is the only payment method the storefront offers.
const PaymentMethodCash = "cash"

var validOrderStatuses = map[OrderStatus]bool{
	OrderStatusPending:    true,
	OrderStatusProcessing: true,
	OrderStatusShipped:    true,
	OrderStatusDelivered:  true,
	OrderStatusCancelled:  true,
	OrderStatusNew:        true,
}

// IsValidOrderStatus reports whether s is a member of the fixed status
// set an admin may transition an order to.
func IsValidOrderStatus(s string) bool {
	return validOrderStatuses[OrderStatus(s)]
}
