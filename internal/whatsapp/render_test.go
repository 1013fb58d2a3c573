package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chasqui/internal/domain"
)

func TestNormalizeTo(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"5215551234567", "whatsapp:+5215551234567"},
		{"+5215551234567", "whatsapp:+5215551234567"},
		{"whatsapp:+5215551234567", "whatsapp:+5215551234567"},
		{"whatsapp:5215551234567", "whatsapp:+5215551234567"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeTo(tc.in), tc.in)
	}
}

func TestRenderButtons(t *testing.T) {
	out := RenderButtons("Que deseas hacer?", []Button{
		{ID: "menu", Title: "Ver menu"},
		{ID: "order", Title: "Hacer pedido"},
	})

	assert.Contains(t, out, "Que deseas hacer?")
	assert.Contains(t, out, "1. Ver menu")
	assert.Contains(t, out, "2. Hacer pedido")
	assert.Contains(t, out, "Responde con el numero")
}

func TestRenderButtons_CapsAtThree(t *testing.T) {
	out := RenderButtons("Opciones", []Button{
		{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"},
	})

	assert.Contains(t, out, "3. c")
	assert.NotContains(t, out, "4. d")
}

func TestRenderList(t *testing.T) {
	out := RenderList("Nuestro menu", "Elige una opcion", []Section{
		{
			Title: "Bebidas",
			Rows: []Row{
				{Title: "Cafe", Description: "$10.00"},
				{Title: "Te"},
			},
		},
	})

	assert.Contains(t, out, "Nuestro menu")
	assert.Contains(t, out, "Bebidas")
	assert.Contains(t, out, "1. Cafe")
	assert.Contains(t, out, "$10.00")
	assert.Contains(t, out, "2. Te")
	assert.Contains(t, out, "Elige una opcion")
}

func TestRenderOrderConfirmation(t *testing.T) {
	address := "Av. Siempre Viva 742"
	order := &domain.Order{
		ID:              42,
		Status:          domain.OrderStatusPending,
		Total:           36.50,
		DeliveryAddress: &address,
		Lines: []domain.OrderLine{
			{ProductName: "Tacos al pastor", Quantity: 2, UnitPrice: 10.00, Subtotal: 20.00},
			{ProductName: "Agua de horchata", Quantity: 3, UnitPrice: 5.50, Subtotal: 16.50},
		},
	}

	out := RenderOrderConfirmation(order)

	assert.Contains(t, out, "Pedido #42")
	assert.Contains(t, out, "2x Tacos al pastor - $20.00")
	assert.Contains(t, out, "3x Agua de horchata - $16.50")
	assert.Contains(t, out, "Total: $36.50")
	assert.Contains(t, out, "Av. Siempre Viva 742")
}

func TestRenderOrderConfirmation_NoAddress(t *testing.T) {
	order := &domain.Order{ID: 7, Total: 0}

	out := RenderOrderConfirmation(order)

	assert.Contains(t, out, "Pedido #7")
	assert.Contains(t, out, "Total: $0.00")
	assert.NotContains(t, out, "Entrega:")
}
