package eventhandlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pangolivas/gensemen-pro/modules/notifications/application/eventhandlers"
	"github.com/pangolivas/gensemen-pro/modules/orders/domain"
	"github.com/pangolivas/gensemen-pro/modules/shared/events"
)

func TestOrderCreatedHandler_LogsOrder(t *testing.T) {
	var buf bytes.Buffer
	handler := eventhandlers.NewOrderCreatedHandler(slog.New(slog.NewJSONHandler(&buf, nil)))

	total := 120.0
	order := domain.Build(domain.Payload{
		Cliente: &domain.CustomerInput{Nombre: "Ana", Email: "ana@example.com", Telefono: "555"},
		Items:   []domain.ItemInput{{ID: "t-1", Nombre: "Zeus", Cantidad: 1, Precio: 120}},
		Total:   &total,
	}, domain.ChannelLandingPage, time.Now())
	order.AssignID("p-9")

	require.NoError(t, handler.Handle(context.Background(), order.PopDomainEvents()[0]))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "new order notification", line["msg"])
	assert.Equal(t, "p-9", line["order_id"])
	assert.Equal(t, "ana@example.com", line["cliente_email"])
	assert.Equal(t, 120.0, line["total"])
}

func TestOrderCreatedHandler_IgnoresOtherPayloads(t *testing.T) {
	var buf bytes.Buffer
	handler := eventhandlers.NewOrderCreatedHandler(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := handler.Handle(context.Background(), events.NewBaseEvent(domain.OrderCreatedEventType, "p-1"))

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "unexpected event payload")
}
