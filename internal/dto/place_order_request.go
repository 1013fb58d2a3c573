package dto

type PlaceOrderRequest struct {
	Phone           string           `json:"phone"`
	Name            string           `json:"name,omitempty"`
	Items           []PlaceOrderItem `json:"items"`
	DeliveryAddress *string          `json:"deliveryAddress,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

type PlaceOrderItem struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
