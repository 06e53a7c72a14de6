package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/TemirB/bakeflow-admin/internal/domain"
)

var (
	customers = []string{"Aung Aung", "Thida", "Kyaw Zin", "Mya Mya", "Hla Hla", "Su Su", ""}
	menu      = []domain.Product{
		{ID: 1, Name: "Chocolate Cake", Category: "cakes", Price: 25, Stock: 12, Status: domain.ProductActive},
		{ID: 2, Name: "Red Velvet", Category: "cakes", Price: 28, Stock: 6, Status: domain.ProductActive},
		{ID: 3, Name: "Croissant", Category: "pastries", Price: 3.5, Stock: 40, Status: domain.ProductActive},
		{ID: 4, Name: "Cinnamon Roll", Category: "pastries", Price: 4, Stock: 0, Status: domain.ProductActive},
		{ID: 5, Name: "Sourdough", Category: "breads", Price: 7, Stock: 15, Status: domain.ProductDraft},
		{ID: 6, Name: "Matcha Tart", Category: "tarts", Price: 9, Stock: 3, Status: domain.ProductInactive},
	}
)

// Bakery is an in-memory stand-in for the bakery backend the console polls.
type Bakery struct {
	mu       sync.Mutex
	orders   []domain.Order
	products []domain.Product
	nextID   int64
	rnd      *rand.Rand
	now      func() time.Time
}

func NewBakery() *Bakery {
	products := make([]domain.Product, len(menu))
	copy(products, menu)
	for i := range products {
		products[i] = withStockFlags(products[i])
	}
	return &Bakery{
		products: products,
		nextID:   1,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// NewOrder places a random pending order and returns it.
func (b *Bakery) NewOrder() domain.Order {
	b.mu.Lock()
	defer b.mu.Unlock()

	o := domain.Order{
		ID:           b.nextID,
		CustomerName: customers[b.rnd.Intn(len(customers))],
		DeliveryType: domain.DeliveryPickup,
		Status:       domain.StatusPending,
		CreatedAt:    b.now().UTC(),
	}
	b.nextID++
	if b.rnd.Intn(2) == 0 {
		o.DeliveryType = domain.DeliveryDelivery
		o.Address = fmt.Sprintf("No. %d, Pyay Road", b.rnd.Intn(200)+1)
		o.DeliveryFee = 2
	}
	for n := b.rnd.Intn(3); n >= 0; n-- {
		p := b.products[b.rnd.Intn(len(b.products))]
		qty := b.rnd.Intn(3) + 1
		o.Items = append(o.Items, domain.OrderItem{OrderID: o.ID, Product: p.Name, Quantity: qty, Price: p.Price})
		o.TotalItems += qty
		o.Subtotal += p.Price * float64(qty)
	}
	o.TotalAmount = o.Subtotal + o.DeliveryFee

	b.orders = append([]domain.Order{o}, b.orders...)
	return o
}

func (b *Bakery) Routes(r chi.Router) {
	r.Get("/api/admin/orders", b.listOrders)
	r.Put("/api/admin/orders/{id}/status", b.updateOrderStatus)
	r.Get("/api/products", b.listProducts)
	r.Delete("/api/products/{id}", b.archiveProduct)
	r.Patch("/api/products/{id}/status", b.updateProductStatus)
}

type apiError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (b *Bakery) listOrders(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	orders := append([]domain.Order{}, b.orders...)
	b.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (b *Bakery) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "Invalid order ID"})
		return
	}
	var body struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !body.Status.Valid() {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "Invalid status"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.orders {
		o := &b.orders[i]
		if o.ID != id {
			continue
		}
		if o.Status == body.Status {
			writeJSON(w, http.StatusOK, domain.StatusUpdateResult{Success: true, Duplicate: true})
			return
		}
		if next, ok := o.Status.Next(); !ok || next != body.Status {
			writeJSON(w, http.StatusConflict, apiError{
				Error:   "Invalid transition",
				Details: fmt.Sprintf("cannot move order %d from %s to %s", id, o.Status, body.Status),
			})
			return
		}
		o.Status = body.Status
		if body.Status.Terminal() {
			done := b.now().UTC()
			o.CompletedAt = &done
		}
		writeJSON(w, http.StatusOK, domain.StatusUpdateResult{Success: true, NotificationSent: true})
		return
	}
	writeJSON(w, http.StatusNotFound, apiError{Error: "Order not found"})
}

func (b *Bakery) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	status := domain.ProductStatus(q.Get("status"))
	search := strings.ToLower(q.Get("search"))

	b.mu.Lock()
	out := make([]domain.Product, 0, len(b.products))
	for _, p := range b.products {
		if category != "" && p.Category != category {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		if status == "" && p.Status == domain.ProductArchived {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}
	b.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeJSON(w, http.StatusOK, map[string]any{"products": out})
}

func (b *Bakery) archiveProduct(w http.ResponseWriter, r *http.Request) {
	b.setProductStatus(w, r, domain.ProductArchived)
}

func (b *Bakery) updateProductStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status domain.ProductStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !body.Status.Valid() {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "Invalid status"})
		return
	}
	b.setProductStatus(w, r, body.Status)
}

func (b *Bakery) setProductStatus(w http.ResponseWriter, r *http.Request, status domain.ProductStatus) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "Invalid product ID"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.products {
		if b.products[i].ID == id {
			b.products[i].Status = status
			b.products[i].UpdatedAt = b.now().UTC()
			writeJSON(w, http.StatusOK, map[string]bool{"success": true})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, apiError{Error: "Product not found"})
}

func withStockFlags(p domain.Product) domain.Product {
	p.OutOfStock = p.Stock <= 0
	p.LowStock = !p.OutOfStock && p.Stock < domain.LowStockThreshold
	return p
}
