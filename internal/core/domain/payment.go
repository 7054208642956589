package domain

// PaymentStatus is the internal lifecycle state of a payment intent.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusCanceled PaymentStatus = "CANCELED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// IsTerminal reports whether the pull-based reconciler treats s as final.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusFailed, PaymentStatusCanceled, PaymentStatusRefunded:
		return true
	}
	return false
}

// Valid reports whether s is one of the five known states.
func (s PaymentStatus) Valid() bool {
	return s == PaymentStatusPending || s.IsTerminal()
}

// Provider identifies a payment gateway.
type Provider string

const (
	ProviderMercadoPago Provider = "MERCADO_PAGO"
	ProviderStripe      Provider = "STRIPE"
)

// ParseProvider accepts the canonical name or the lowercase URL slug
// ("mercadopago", "stripe").
func ParseProvider(s string) (Provider, bool) {
	switch s {
	case string(ProviderMercadoPago), "mercadopago", "mercado_pago":
		return ProviderMercadoPago, true
	case string(ProviderStripe), "stripe":
		return ProviderStripe, true
	}
	return "", false
}
