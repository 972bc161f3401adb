// Package http provides HTTP handlers for the catalog module.
package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pangolivas/gensemen-pro/modules/catalog/application/commands"
	"github.com/pangolivas/gensemen-pro/modules/catalog/application/queries"
	"github.com/pangolivas/gensemen-pro/modules/catalog/domain"
	"github.com/pangolivas/gensemen-pro/modules/shared/apperrors"
	"github.com/pangolivas/gensemen-pro/modules/shared/httpapi"
)

type Handler struct {
	listProducts  *queries.ListProductsHandler
	getProduct    *queries.GetProductHandler
	getInventory  *queries.GetInventoryHandler
	createProduct *commands.CreateProductHandler
}

// RegisterRoutes registers the catalog routes and their storefront aliases.
func RegisterRoutes(
	mux *http.ServeMux,
	listProducts *queries.ListProductsHandler,
	getProduct *queries.GetProductHandler,
	getInventory *queries.GetInventoryHandler,
	createProduct *commands.CreateProductHandler,
) {
	h := &Handler{
		listProducts:  listProducts,
		getProduct:    getProduct,
		getInventory:  getInventory,
		createProduct: createProduct,
	}

	for _, prefix := range []string{"/products", "/api/productos"} {
		mux.HandleFunc("GET "+prefix, h.handleListProducts)
		mux.HandleFunc("POST "+prefix, h.handleCreateProduct)
		mux.HandleFunc("GET "+prefix+"/{id}", h.handleGetProduct)
	}
	for _, path := range []string{"/inventory", "/api/inventario"} {
		mux.HandleFunc("GET "+path, h.handleGetInventory)
	}
}

// Request/Response DTOs

type listProductsResponse struct {
	Success   bool             `json:"success"`
	Total     int              `json:"total"`
	Productos []domain.Product `json:"productos"`
}

type getProductResponse struct {
	Success  bool           `json:"success"`
	Producto domain.Product `json:"producto"`
}

type createProductRequest struct {
	Nombre string   `json:"nombre"`
	Raza   string   `json:"raza"`
	Precio *float64 `json:"precio"`
}

type inventoryListResponse struct {
	Success bool `json:"success"`
	*queries.InventoryReport
}

type inventoryItemResponse struct {
	Success bool `json:"success"`
	*queries.ProductStock
}

// Handlers

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	query := queries.ListProductsQuery{
		Categoria:  r.URL.Query().Get("categoria"),
		Disponible: r.URL.Query().Get("disponible") == "true",
	}

	products, err := h.listProducts.Handle(r.Context(), query)
	if err != nil {
		httpapi.WriteError(w, err, "Error al obtener productos")
		return
	}

	httpapi.WriteJSON(w, http.StatusOK, listProductsResponse{
		Success:   true,
		Total:     len(products),
		Productos: products,
	})
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	query := queries.GetProductQuery{ProductID: r.PathValue("id")}

	product, err := h.getProduct.Handle(r.Context(), query)
	if err != nil {
		httpapi.WriteError(w, err, "Error al obtener producto")
		return
	}

	httpapi.WriteJSON(w, http.StatusOK, getProductResponse{Success: true, Producto: product})
}

func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpapi.WriteError(w, apperrors.NewValidationError("body", "Cuerpo de la solicitud inválido"), "Error al procesar solicitud")
		return
	}

	cmd := commands.CreateProductCommand{Nombre: req.Nombre, Raza: req.Raza, Precio: req.Precio}
	err := h.createProduct.Handle(r.Context(), cmd)
	httpapi.WriteError(w, err, "Error al procesar solicitud")
}

func (h *Handler) handleGetInventory(w http.ResponseWriter, r *http.Request) {
	query := queries.GetInventoryQuery{ProductoID: r.URL.Query().Get("producto_id")}
	if raw := r.URL.Query().Get("min_dosis"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httpapi.WriteError(w, apperrors.NewValidationError("min_dosis", "min_dosis debe ser un número entero"), "Error al consultar inventario")
			return
		}
		query.MinDosis = &n
	}

	result, err := h.getInventory.Handle(r.Context(), query)
	if err != nil {
		httpapi.WriteError(w, err, "Error al consultar inventario")
		return
	}

	if result.Stock != nil {
		httpapi.WriteJSON(w, http.StatusOK, inventoryItemResponse{Success: true, ProductStock: result.Stock})
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, inventoryListResponse{Success: true, InventoryReport: result.Report})
}
