package domain

import "time"

// DefaultCustomerName se asigna cuando el canal no entrega un nombre.
const DefaultCustomerName = "Cliente"

// Customer is keyed by the messaging-channel phone number: at most one
// record may exist per phone, enforced by a unique index in storage.
type Customer struct {
	ID        uint
	Phone     string
	Name      string
	CreatedAt time.Time
}
