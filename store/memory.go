package store

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/dukahq/duka-api/models"
)

// MemoryStore is a map-backed Store used by the test suites. It mirrors the
// SQL projections in plain Go, enforces the same foreign keys the schema
// would, and supports snapshot-rollback transactions so that checkout
// atomicity can be exercised without a database. The Err* fields inject a
// failure into the matching write, which is how partial-write scenarios are
// provoked.
type MemoryStore struct {
	mu   *sync.Mutex
	data *memData
	inTx bool

	ErrCreateCart       error
	ErrCreateCartItem   error
	ErrCreateOrder      error
	ErrCreateOrderItem  error
	ErrCreateReview     error
	ErrUpdateCartStatus error
}

type memData struct {
	products   map[string]models.Product
	carts      map[string]models.Cart
	cartItems  map[string]models.CartItem
	orders     map[string]models.Order
	orderItems map[string]models.OrderItem
	reviews    map[string]models.Review
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		mu: &sync.Mutex{},
		data: &memData{
			products:   make(map[string]models.Product),
			carts:      make(map[string]models.Cart),
			cartItems:  make(map[string]models.CartItem),
			orders:     make(map[string]models.Order),
			orderItems: make(map[string]models.OrderItem),
			reviews:    make(map[string]models.Review),
		},
	}
}

func (d *memData) clone() *memData {
	c := &memData{
		products:   make(map[string]models.Product, len(d.products)),
		carts:      make(map[string]models.Cart, len(d.carts)),
		cartItems:  make(map[string]models.CartItem, len(d.cartItems)),
		orders:     make(map[string]models.Order, len(d.orders)),
		orderItems: make(map[string]models.OrderItem, len(d.orderItems)),
		reviews:    make(map[string]models.Review, len(d.reviews)),
	}
	for k, v := range d.products {
		c.products[k] = v
	}
	for k, v := range d.carts {
		c.carts[k] = v
	}
	for k, v := range d.cartItems {
		c.cartItems[k] = v
	}
	for k, v := range d.orders {
		c.orders[k] = v
	}
	for k, v := range d.orderItems {
		c.orderItems[k] = v
	}
	for k, v := range d.reviews {
		c.reviews[k] = v
	}
	return c
}

// lock is a no-op inside a transaction: InTx already holds the mutex for
// the whole callback.
func (s *MemoryStore) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// Seed helpers bypass the foreign-key checks so fixtures can be laid out
// directly.
func (s *MemoryStore) SeedProduct(p models.Product) {
	defer s.lock()()
	s.data.products[p.ProductID] = p
}

func (s *MemoryStore) SeedCartItem(item models.CartItem) {
	defer s.lock()()
	s.data.cartItems[item.CartItemID] = item
}

func (s *MemoryStore) SeedOrder(o models.Order) {
	defer s.lock()()
	s.data.orders[o.OrderID] = o
}

func (s *MemoryStore) SeedOrderItem(oi models.OrderItem) {
	defer s.lock()()
	s.data.orderItems[oi.OrderItemID] = oi
}

func (s *MemoryStore) SeedReview(r models.Review) {
	defer s.lock()()
	s.data.reviews[r.ReviewID] = r
}

func (s *MemoryStore) SeedCart(c models.Cart) {
	defer s.lock()()
	s.data.carts[c.CartID] = c
}

// Snapshot accessors used by assertions.

func (s *MemoryStore) Carts() []models.Cart {
	defer s.lock()()
	out := make([]models.Cart, 0, len(s.data.carts))
	for _, c := range s.data.carts {
		out = append(out, c)
	}
	return out
}

func (s *MemoryStore) Orders() []models.Order {
	defer s.lock()()
	out := make([]models.Order, 0, len(s.data.orders))
	for _, o := range s.data.orders {
		out = append(out, o)
	}
	return out
}

func (s *MemoryStore) OrderItems() []models.OrderItem {
	defer s.lock()()
	out := make([]models.OrderItem, 0, len(s.data.orderItems))
	for _, oi := range s.data.orderItems {
		out = append(out, oi)
	}
	return out
}

func (s *MemoryStore) Reviews() []models.Review {
	defer s.lock()()
	out := make([]models.Review, 0, len(s.data.reviews))
	for _, r := range s.data.reviews {
		out = append(out, r)
	}
	return out
}

func (s *MemoryStore) ListActiveProducts(ctx context.Context) ([]models.Product, error) {
	defer s.lock()()
	out := make([]models.Product, 0, len(s.data.products))
	for _, p := range s.data.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) GetCart(ctx context.Context, cartID string) (models.Cart, error) {
	defer s.lock()()
	cart, ok := s.data.carts[cartID]
	if !ok {
		return models.Cart{}, ErrNotFound
	}
	return cart, nil
}

func (s *MemoryStore) CreateCart(ctx context.Context, cart *models.Cart) error {
	if s.ErrCreateCart != nil {
		return s.ErrCreateCart
	}
	defer s.lock()()
	s.data.carts[cart.CartID] = *cart
	return nil
}

func (s *MemoryStore) UpdateCartStatus(ctx context.Context, cartID, status string) error {
	if s.ErrUpdateCartStatus != nil {
		return s.ErrUpdateCartStatus
	}
	defer s.lock()()
	cart, ok := s.data.carts[cartID]
	if !ok {
		return ErrNotFound
	}
	cart.Status = status
	s.data.carts[cartID] = cart
	return nil
}

func (s *MemoryStore) CreateCartItem(ctx context.Context, item *models.CartItem) error {
	if s.ErrCreateCartItem != nil {
		return s.ErrCreateCartItem
	}
	defer s.lock()()
	if _, ok := s.data.carts[item.CartID]; !ok {
		return ErrNotFound
	}
	s.data.cartItems[item.CartItemID] = *item
	return nil
}

func (s *MemoryStore) ActiveCartLines(ctx context.Context, cartID string) ([]CartLine, error) {
	defer s.lock()()
	lines := []CartLine{}
	for _, item := range s.data.cartItems {
		if item.CartID != cartID || item.RemovedAt != nil {
			continue
		}
		p := s.data.products[item.ProductID]
		lines = append(lines, CartLine{ProductID: item.ProductID, Name: p.Name, Price: p.Price})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })
	return lines, nil
}

func (s *MemoryStore) ActiveCartProductIDs(ctx context.Context, cartID string) ([]string, error) {
	defer s.lock()()
	ids := []string{}
	for _, item := range s.data.cartItems {
		if item.CartID == cartID && item.RemovedAt == nil {
			ids = append(ids, item.ProductID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *MemoryStore) CountActiveCartItems(ctx context.Context, cartID string) (int64, error) {
	defer s.lock()()
	var count int64
	for _, item := range s.data.cartItems {
		if item.CartID == cartID && item.RemovedAt == nil {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) CreateOrder(ctx context.Context, order *models.Order) error {
	if s.ErrCreateOrder != nil {
		return s.ErrCreateOrder
	}
	defer s.lock()()
	s.data.orders[order.OrderID] = *order
	return nil
}

func (s *MemoryStore) CreateOrderItem(ctx context.Context, item *models.OrderItem) error {
	if s.ErrCreateOrderItem != nil {
		return s.ErrCreateOrderItem
	}
	defer s.lock()()
	if _, ok := s.data.orders[item.OrderID]; !ok {
		return ErrNotFound
	}
	s.data.orderItems[item.OrderItemID] = *item
	return nil
}

func (s *MemoryStore) CreateReview(ctx context.Context, review *models.Review) error {
	if s.ErrCreateReview != nil {
		return s.ErrCreateReview
	}
	defer s.lock()()
	s.data.reviews[review.ReviewID] = *review
	return nil
}

func (s *MemoryStore) TopRated(ctx context.Context, limit int) ([]ProductRating, error) {
	defer s.lock()()
	type agg struct {
		sum   int
		count int64
	}
	byProduct := map[string]*agg{}
	for _, r := range s.data.reviews {
		p, ok := s.data.products[r.ProductID]
		if !ok || !p.IsActive {
			continue
		}
		a := byProduct[r.ProductID]
		if a == nil {
			a = &agg{}
			byProduct[r.ProductID] = a
		}
		a.sum += r.Rating
		a.count++
	}
	rows := make([]ProductRating, 0, len(byProduct))
	for productID, a := range byProduct {
		avg := math.Round(float64(a.sum)/float64(a.count)*100) / 100
		rows = append(rows, ProductRating{
			Name:       s.data.products[productID].Name,
			AvgRating:  avg,
			NumReviews: a.count,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].AvgRating != rows[j].AvgRating {
			return rows[i].AvgRating > rows[j].AvgRating
		}
		return rows[i].NumReviews > rows[j].NumReviews
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func quarterStart(t time.Time) time.Time {
	month := time.Month(((int(t.Month())-1)/3)*3 + 1)
	return time.Date(t.Year(), month, 1, 0, 0, 0, 0, t.Location())
}

func (s *MemoryStore) TopSelling(ctx context.Context, limit int) ([]ProductSales, error) {
	defer s.lock()()
	quarter := quarterStart(time.Now())
	sold := map[string]int64{}
	for _, oi := range s.data.orderItems {
		order, ok := s.data.orders[oi.OrderID]
		if !ok || !quarterStart(order.OrderDate).Equal(quarter) {
			continue
		}
		sold[oi.ProductID] += int64(oi.Quantity)
	}
	rows := make([]ProductSales, 0, len(sold))
	for productID, total := range sold {
		rows = append(rows, ProductSales{Name: s.data.products[productID].Name, TotalSold: total})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalSold > rows[j].TotalSold })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (s *MemoryStore) RepeatCustomers(ctx context.Context) ([]MonthlyRepeat, error) {
	defer s.lock()()
	type userMonth struct {
		userID string
		month  time.Time
	}
	counts := map[userMonth]int{}
	for _, o := range s.data.orders {
		m := time.Date(o.OrderDate.Year(), o.OrderDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		counts[userMonth{o.UserID, m}]++
	}
	repeat := map[time.Time]int64{}
	for um, n := range counts {
		if n > 1 {
			repeat[um.month]++
		}
	}
	months := make([]time.Time, 0, len(repeat))
	for m := range repeat {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	rows := make([]MonthlyRepeat, 0, len(months))
	for _, m := range months {
		rows = append(rows, MonthlyRepeat{Month: m.Format("January 2006"), RepeatCustomers: repeat[m]})
	}
	return rows, nil
}

func (s *MemoryStore) AbandonedProducts(ctx context.Context, limit int) ([]AbandonedProduct, error) {
	defer s.lock()()
	// Distinct abandoned carts per product; removed items still count, the
	// projection looks at everything that was ever in the cart.
	carts := map[string]map[string]struct{}{}
	for _, item := range s.data.cartItems {
		cart, ok := s.data.carts[item.CartID]
		if !ok || cart.Status != models.CartStatusAbandoned {
			continue
		}
		set := carts[item.ProductID]
		if set == nil {
			set = map[string]struct{}{}
			carts[item.ProductID] = set
		}
		set[item.CartID] = struct{}{}
	}
	rows := make([]AbandonedProduct, 0, len(carts))
	for productID, set := range carts {
		rows = append(rows, AbandonedProduct{
			Name:           s.data.products[productID].Name,
			AbandonedCount: int64(len(set)),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].AbandonedCount > rows[j].AbandonedCount })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// InTx holds the lock for the whole callback and restores a snapshot when
// the callback fails, matching the rollback the SQL store gets for free.
func (s *MemoryStore) InTx(ctx context.Context, fn func(Store) error) error {
	if s.inTx {
		return fn(s)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	tx := &MemoryStore{
		mu:   s.mu,
		data: s.data,
		inTx: true,

		ErrCreateCart:       s.ErrCreateCart,
		ErrCreateCartItem:   s.ErrCreateCartItem,
		ErrCreateOrder:      s.ErrCreateOrder,
		ErrCreateOrderItem:  s.ErrCreateOrderItem,
		ErrCreateReview:     s.ErrCreateReview,
		ErrUpdateCartStatus: s.ErrUpdateCartStatus,
	}
	if err := fn(tx); err != nil {
		*s.data = *snapshot
		return err
	}
	return nil
}
