package dto

// ItemRequest es un renglon solicitado: producto y cantidad, sin precio.
// El precio siempre lo resuelve el pricer contra el catalogo.
type ItemRequest struct {
	ProductID uint
	Quantity  int
}

type PlaceOrderInput struct {
	Phone           string
	Name            string
	Items           []ItemRequest
	DeliveryAddress *string
	Notes           *string
}
