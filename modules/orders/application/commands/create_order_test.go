package commands_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pangolivas/gensemen-pro/modules/orders/application/commands"
	"github.com/pangolivas/gensemen-pro/modules/orders/domain"
	"github.com/pangolivas/gensemen-pro/modules/shared/apperrors"
	"github.com/pangolivas/gensemen-pro/modules/shared/events"
)

// --- Mocks ---

type mockOrderRepository struct {
	createFn func(ctx context.Context, order *domain.Order) (string, error)
}

func (m *mockOrderRepository) Create(ctx context.Context, order *domain.Order) (string, error) {
	return m.createFn(ctx, order)
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return nil, domain.ErrOrderNotFound
}

func (m *mockOrderRepository) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Order, error) {
	return nil, nil
}

type mockPublisher struct {
	publishFn func(ctx context.Context, evts ...events.Event) error
}

func (m *mockPublisher) Publish(ctx context.Context, evts ...events.Event) error {
	return m.publishFn(ctx, evts...)
}

type mockRecorder struct {
	origins []string
}

func (m *mockRecorder) ObserveOrderCreated(origen string) {
	m.origins = append(m.origins, origen)
}

func payload(total float64) domain.Payload {
	return domain.Payload{
		Cliente: &domain.CustomerInput{Nombre: "Ana", Email: "ana@example.com", Telefono: "555"},
		Items:   []domain.ItemInput{{ID: "t-1", Nombre: "Zeus", Cantidad: 2, Precio: 100}},
		Total:   &total,
	}
}

// --- Tests ---

func TestCreateOrderHandler_Handle_Success(t *testing.T) {
	var saved *domain.Order
	var published []events.Event
	repo := &mockOrderRepository{
		createFn: func(ctx context.Context, order *domain.Order) (string, error) {
			saved = order
			return "p-1", nil
		},
	}
	publisher := &mockPublisher{
		publishFn: func(ctx context.Context, evts ...events.Event) error {
			published = evts
			return nil
		},
	}
	recorder := &mockRecorder{}
	var logs bytes.Buffer
	handler := commands.NewCreateOrderHandler(repo, publisher, recorder, slog.New(slog.NewTextHandler(&logs, nil)))

	start := time.Now().UTC()
	order, err := handler.Handle(context.Background(), commands.CreateOrderCommand{
		Payload: payload(200),
		Channel: domain.ChannelLandingPage,
	})

	require.NoError(t, err)
	require.Same(t, saved, order)
	assert.Equal(t, "p-1", order.ID())
	assert.Equal(t, domain.StatusPending, order.Status())
	assert.False(t, order.CreatedAt().Before(start.Truncate(time.Second)))
	assert.Equal(t, []string{"landing_page"}, recorder.origins)

	require.Len(t, published, 1)
	assert.Equal(t, domain.OrderCreatedEventType, published[0].EventType())
	assert.Empty(t, order.DomainEvents())
	assert.NotContains(t, logs.String(), "order total differs")
}

func TestCreateOrderHandler_Handle_TotalMismatchIsLogged(t *testing.T) {
	repo := &mockOrderRepository{
		createFn: func(ctx context.Context, order *domain.Order) (string, error) { return "p-2", nil },
	}
	var logs bytes.Buffer
	handler := commands.NewCreateOrderHandler(repo, nil, nil, slog.New(slog.NewTextHandler(&logs, nil)))

	order, err := handler.Handle(context.Background(), commands.CreateOrderCommand{
		Payload: payload(150),
		Channel: domain.ChannelLandingPage,
	})

	require.NoError(t, err)
	assert.Equal(t, 150.0, order.Total().InexactFloat64())
	assert.Contains(t, logs.String(), "order total differs")
}

func TestCreateOrderHandler_Handle_ValidationError(t *testing.T) {
	repo := &mockOrderRepository{
		createFn: func(ctx context.Context, order *domain.Order) (string, error) {
			t.Fatal("repository must not be called for invalid payloads")
			return "", nil
		},
	}
	handler := commands.NewCreateOrderHandler(repo, nil, nil, slog.Default())

	_, err := handler.Handle(context.Background(), commands.CreateOrderCommand{
		Payload: payload(200),
		Channel: domain.ChannelStore,
	})

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "El método de pago es requerido", ve.Message)
}

func TestCreateOrderHandler_Handle_StoreError(t *testing.T) {
	storeErr := apperrors.NewStoreError("create pedidos", errors.New("deadline exceeded"))
	repo := &mockOrderRepository{
		createFn: func(ctx context.Context, order *domain.Order) (string, error) { return "", storeErr },
	}
	recorder := &mockRecorder{}
	handler := commands.NewCreateOrderHandler(repo, nil, recorder, slog.Default())

	_, err := handler.Handle(context.Background(), commands.CreateOrderCommand{
		Payload: payload(200),
		Channel: domain.ChannelLandingPage,
	})

	assert.ErrorIs(t, err, storeErr)
	assert.True(t, apperrors.IsStore(err))
	assert.Empty(t, recorder.origins)
}
