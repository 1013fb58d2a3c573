package whatsapp

import (
	"context"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"chasqui/internal/config"
	"chasqui/internal/domain"
)

// Sender envia mensajes salientes por la API de WhatsApp de Twilio.
type Sender struct {
	client *twilio.RestClient
	from   string
	logger *zap.Logger
}

func NewSender(cfg config.TwilioConfig, logger *zap.Logger) *Sender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &Sender{
		client: client,
		from:   cfg.WhatsAppNumber,
		logger: logger,
	}
}

func (s *Sender) SendText(to, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(NormalizeTo(to))
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.logger.Error("failed to send whatsapp message", zap.String("to", to), zap.Error(err))
		return err
	}

	if resp.Sid != nil {
		s.logger.Info("whatsapp message sent", zap.String("to", to), zap.String("sid", *resp.Sid))
	}
	return nil
}

func (s *Sender) SendButtons(to, body string, buttons []Button) error {
	return s.SendText(to, RenderButtons(body, buttons))
}

func (s *Sender) SendList(to, body, buttonText string, sections []Section) error {
	return s.SendText(to, RenderList(body, buttonText, sections))
}

// NotifyOrderPlaced manda la confirmacion al telefono del pedido. Los
// fallos solo se registran: el pedido ya quedo persistido.
func (s *Sender) NotifyOrderPlaced(_ context.Context, order *domain.Order) {
	if order.Customer == nil || order.Customer.Phone == "" {
		s.logger.Warn("order has no customer phone, skipping confirmation", zap.Uint("orderId", order.ID))
		return
	}

	if err := s.SendText(order.Customer.Phone, RenderOrderConfirmation(order)); err != nil {
		s.logger.Error("failed to send order confirmation",
			zap.Uint("orderId", order.ID),
			zap.Error(err),
		)
	}
}
