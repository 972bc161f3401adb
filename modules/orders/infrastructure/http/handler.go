// Package http provides HTTP handlers for the orders module.
package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pangolivas/gensemen-pro/modules/orders/application/commands"
	"github.com/pangolivas/gensemen-pro/modules/orders/application/queries"
	"github.com/pangolivas/gensemen-pro/modules/orders/domain"
	"github.com/pangolivas/gensemen-pro/modules/shared/apperrors"
	"github.com/pangolivas/gensemen-pro/modules/shared/httpapi"
)

type Handler struct {
	createOrder *commands.CreateOrderHandler
	getOrder    *queries.GetOrderHandler
	listOrders  *queries.ListOrdersHandler
}

// RegisterRoutes registers the orders module routes to the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	createOrder *commands.CreateOrderHandler,
	getOrder *queries.GetOrderHandler,
	listOrders *queries.ListOrdersHandler,
) {
	h := &Handler{
		createOrder: createOrder,
		getOrder:    getOrder,
		listOrders:  listOrders,
	}

	for _, prefix := range []string{"/orders", "/api/pedidos"} {
		mux.HandleFunc("GET "+prefix, h.handleListOrders)
		mux.HandleFunc("GET "+prefix+"/{id}", h.handleGetOrder)
		mux.HandleFunc("POST "+prefix, h.handleCreateOrder(domain.ChannelLandingPage))
	}
	for _, path := range []string{"/store/orders", "/api/tienda/pedidos"} {
		mux.HandleFunc("POST "+path, h.handleCreateOrder(domain.ChannelStore))
	}
}

// Request/Response DTOs

type createOrderRequest struct {
	Cliente   *clienteRequest `json:"cliente"`
	Items     []itemRequest   `json:"items"`
	Productos []itemRequest   `json:"productos"`
	// Total is decoded loosely so that a non-numeric value is reported as an
	// invalid total rather than a malformed body.
	Total      any    `json:"total"`
	MetodoPago string `json:"metodoPago"`
	Notas      string `json:"notas"`
}

type clienteRequest struct {
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	RFC       string `json:"rfc"`
}

type itemRequest struct {
	ID       string  `json:"id"`
	Nombre   string  `json:"nombre"`
	Cantidad int     `json:"cantidad"`
	Precio   float64 `json:"precio"`
}

type createOrderResponse struct {
	Success  bool              `json:"success"`
	PedidoID string            `json:"pedidoId"`
	Pedido   *queries.OrderDTO `json:"pedido"`
	Message  string            `json:"message"`
}

type getOrderResponse struct {
	Success bool              `json:"success"`
	Pedido  *queries.OrderDTO `json:"pedido"`
}

type listOrdersResponse struct {
	Success bool                `json:"success"`
	Total   int                 `json:"total"`
	Pedidos []*queries.OrderDTO `json:"pedidos"`
}

func (req createOrderRequest) payload() domain.Payload {
	p := domain.Payload{
		Items:      toItems(req.Items),
		Productos:  toItems(req.Productos),
		MetodoPago: req.MetodoPago,
		Notas:      req.Notas,
	}
	if req.Cliente != nil {
		p.Cliente = &domain.CustomerInput{
			Nombre:    req.Cliente.Nombre,
			Email:     req.Cliente.Email,
			Telefono:  req.Cliente.Telefono,
			Direccion: req.Cliente.Direccion,
			RFC:       req.Cliente.RFC,
		}
	}
	if total, ok := req.Total.(float64); ok {
		p.Total = &total
	}
	return p
}

func toItems(in []itemRequest) []domain.ItemInput {
	out := make([]domain.ItemInput, len(in))
	for i, item := range in {
		out[i] = domain.ItemInput{ID: item.ID, Nombre: item.Nombre, Cantidad: item.Cantidad, Precio: item.Precio}
	}
	return out
}

// Handlers

func (h *Handler) handleCreateOrder(channel domain.Channel) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpapi.WriteError(w, apperrors.NewValidationError("body", "Cuerpo de la solicitud inválido"), "Error al crear el pedido")
			return
		}

		cmd := commands.CreateOrderCommand{Payload: req.payload(), Channel: channel}
		order, err := h.createOrder.Handle(r.Context(), cmd)
		if err != nil {
			httpapi.WriteError(w, err, "Error al crear el pedido")
			return
		}

		httpapi.WriteJSON(w, http.StatusCreated, createOrderResponse{
			Success:  true,
			PedidoID: order.ID(),
			Pedido:   queries.ToOrderDTO(order),
			Message:  "Pedido creado exitosamente",
		})
	}
}

func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	query := queries.GetOrderQuery{OrderID: r.PathValue("id")}

	order, err := h.getOrder.Handle(r.Context(), query)
	if err != nil {
		httpapi.WriteError(w, err, "Error al obtener el pedido")
		return
	}

	httpapi.WriteJSON(w, http.StatusOK, getOrderResponse{Success: true, Pedido: order})
}

func (h *Handler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	query := queries.ListOrdersQuery{
		Estado:       r.URL.Query().Get("estado"),
		ClienteEmail: r.URL.Query().Get("cliente_email"),
		Limit:        limit,
	}

	orders, err := h.listOrders.Handle(r.Context(), query)
	if err != nil {
		httpapi.WriteError(w, err, "Error al obtener pedidos")
		return
	}

	httpapi.WriteJSON(w, http.StatusOK, listOrdersResponse{
		Success: true,
		Total:   len(orders),
		Pedidos: orders,
	})
}
