package domain

// Status is an order or payment status.
type Status string

const (
	StatusPending   Status = "pendiente"
	StatusConfirmed Status = "confirmado"
	StatusShipped   Status = "enviado"
	StatusDelivered Status = "entregado"
	StatusCancelled Status = "cancelado"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// Channel is the sales channel an order came from.
type Channel string

const (
	ChannelLandingPage Channel = "landing_page"
	ChannelStore       Channel = "tienda_online"
)

func (c Channel) String() string { return string(c) }
