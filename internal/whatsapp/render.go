package whatsapp

import (
	"fmt"
	"strings"

	"chasqui/internal/domain"
)

type Button struct {
	ID    string
	Title string
}

type Row struct {
	ID          string
	Title       string
	Description string
}

type Section struct {
	Title string
	Rows  []Row
}

// Twilio aun no soporta botones ni listas nativas de WhatsApp, asi que
// ambos se renderizan como texto numerado.

func RenderButtons(body string, buttons []Button) string {
	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n\n")

	if len(buttons) > 3 {
		buttons = buttons[:3]
	}
	for i, btn := range buttons {
		fmt.Fprintf(&b, "%d. %s\n", i+1, btn.Title)
	}
	b.WriteString("\nResponde con el numero de tu opcion.")

	return b.String()
}

func RenderList(body, buttonText string, sections []Section) string {
	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n\n")

	for _, section := range sections {
		if section.Title != "" {
			fmt.Fprintf(&b, "%s\n", section.Title)
		}
		for i, row := range section.Rows {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, row.Title)
			if row.Description != "" {
				fmt.Fprintf(&b, "     %s\n", row.Description)
			}
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n%s", buttonText)

	return b.String()
}

// RenderOrderConfirmation arma el mensaje que recibe el cliente cuando su
// pedido quedo registrado.
func RenderOrderConfirmation(order *domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pedido #%d recibido.\n\n", order.ID)

	for _, line := range order.Lines {
		fmt.Fprintf(&b, "%dx %s - $%.2f\n", line.Quantity, line.ProductName, line.Subtotal)
	}

	fmt.Fprintf(&b, "\nTotal: $%.2f\n", order.Total)
	if order.DeliveryAddress != nil && *order.DeliveryAddress != "" {
		fmt.Fprintf(&b, "Entrega: %s\n", *order.DeliveryAddress)
	}
	b.WriteString("\nTe avisaremos cuando este confirmado.")

	return b.String()
}

// NormalizeTo lleva cualquier variante del numero al formato que exige la
// API: whatsapp:+<digitos>.
func NormalizeTo(to string) string {
	cleaned := strings.ReplaceAll(to, "whatsapp:", "")
	cleaned = strings.ReplaceAll(cleaned, "+", "")
	return "whatsapp:+" + cleaned
}
