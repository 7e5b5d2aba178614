package datagen

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/dukahq/duka-api/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Config sizes the generated dataset. The defaults match the analytics demo
// this feeds: enough rows for every report to have something to say.
type Config struct {
	NumUsers    int
	NumProducts int
	NumOrders   int
	NumReviews  int
	NumCarts    int
	NumSessions int
	Seed        uint64
}

func DefaultConfig() Config {
	return Config{
		NumUsers:    50,
		NumProducts: 30,
		NumOrders:   100,
		NumReviews:  70,
		NumCarts:    50,
		NumSessions: 80,
	}
}

// Dataset is a self-consistent batch: users and products are generated
// first, and every other table references only ids that exist in those
// slices. That property is what makes the output safe to load in one shot.
type Dataset struct {
	Users      []models.User
	Products   []models.Product
	Orders     []models.Order
	OrderItems []models.OrderItem
	Reviews    []models.Review
	Carts      []models.Cart
	CartItems  []models.CartItem
	Sessions   []models.Session
}

var (
	signupSources  = []string{"organic", "ad", "referral"}
	categories     = []string{"Electronics", "Apparel", "Home", "Beauty", "Toys"}
	nameSuffixes   = []string{"Pro", "Max", "Lite", "XL", "Mini"}
	orderStatuses  = []string{"pending", "completed"}
	cartStatuses   = []string{models.CartStatusActive, models.CartStatusAbandoned, models.CartStatusConverted}
	trafficSources = []string{"Google Ads", "Organic", "Email Campaign", "Direct"}
)

// Generate builds a dataset from the config. The same seed always produces
// the same dataset.
func Generate(cfg Config) *Dataset {
	f := gofakeit.New(cfg.Seed)
	now := time.Now()

	ds := &Dataset{}

	for i := 0; i < cfg.NumUsers; i++ {
		ds.Users = append(ds.Users, models.User{
			UserID:       uuidFrom(f),
			Name:         f.Name(),
			Email:        fmt.Sprintf("%s%d@%s", f.Username(), i, f.DomainName()),
			SignupSource: f.RandomString(signupSources),
		})
	}

	for i := 0; i < cfg.NumProducts; i++ {
		ds.Products = append(ds.Products, models.Product{
			ProductID: uuidFrom(f),
			Name:      f.HackerNoun() + " " + f.RandomString(nameSuffixes),
			Category:  f.RandomString(categories),
			Price:     decimal.NewFromFloat(f.Price(10, 1000)).Round(2),
			CreatedAt: f.DateRange(now.AddDate(0, -6, 0), now),
			IsActive:  true,
		})
	}

	userIDs := make([]string, len(ds.Users))
	for i, u := range ds.Users {
		userIDs[i] = u.UserID
	}
	productIDs := make([]string, len(ds.Products))
	for i, p := range ds.Products {
		productIDs[i] = p.ProductID
	}

	for i := 0; i < cfg.NumOrders; i++ {
		order := models.Order{
			OrderID:     uuidFrom(f),
			UserID:      f.RandomString(userIDs),
			OrderDate:   f.DateRange(now.AddDate(0, -3, 0), now),
			Status:      f.RandomString(orderStatuses),
			TotalAmount: decimal.NewFromFloat(f.Price(20, 500)).Round(2),
		}
		ds.Orders = append(ds.Orders, order)

		for j := 0; j < f.Number(1, 5); j++ {
			ds.OrderItems = append(ds.OrderItems, models.OrderItem{
				OrderItemID: uuidFrom(f),
				OrderID:     order.OrderID,
				ProductID:   f.RandomString(productIDs),
				Quantity:    f.Number(1, 3),
				UnitPrice:   decimal.NewFromFloat(f.Price(10, 500)).Round(2),
			})
		}
	}

	for i := 0; i < cfg.NumReviews; i++ {
		ds.Reviews = append(ds.Reviews, models.Review{
			ReviewID:   uuidFrom(f),
			UserID:     f.RandomString(userIDs),
			ProductID:  f.RandomString(productIDs),
			Rating:     f.Number(1, 5),
			Comment:    f.Sentence(8),
			ReviewDate: f.DateRange(now.AddDate(0, -6, 0), now),
		})
	}

	for i := 0; i < cfg.NumCarts; i++ {
		cart := models.Cart{
			CartID:    uuidFrom(f),
			UserID:    f.RandomString(userIDs),
			CreatedAt: f.DateRange(now.AddDate(0, -3, 0), now),
			Status:    f.RandomString(cartStatuses),
		}
		ds.Carts = append(ds.Carts, cart)

		for j := 0; j < f.Number(1, 4); j++ {
			addedAt := f.DateRange(cart.CreatedAt, now)
			item := models.CartItem{
				CartItemID: uuidFrom(f),
				CartID:     cart.CartID,
				ProductID:  f.RandomString(productIDs),
				AddedAt:    addedAt,
			}
			// Roughly half of all cart items end up soft deleted, always
			// after they were added.
			if f.Bool() {
				removedAt := f.DateRange(addedAt, now)
				item.RemovedAt = &removedAt
			}
			ds.CartItems = append(ds.CartItems, item)
		}
	}

	for i := 0; i < cfg.NumSessions; i++ {
		start := f.DateRange(now.AddDate(0, -2, 0), now)
		end := start.Add(time.Duration(f.Number(5, 120)) * time.Minute)
		session := models.Session{
			SessionID:     uuidFrom(f),
			TrafficSource: f.RandomString(trafficSources),
			SessionStart:  start,
			SessionEnd:    end,
			MadePurchase:  f.Number(1, 100) <= 40,
		}
		// One in five sessions stays anonymous.
		if f.Number(1, 100) <= 80 {
			userID := f.RandomString(userIDs)
			session.UserID = &userID
		}
		ds.Sessions = append(ds.Sessions, session)
	}

	return ds
}

// uuidFrom draws a v4 uuid from the faker's seeded source so the whole
// dataset stays reproducible.
func uuidFrom(f *gofakeit.Faker) string {
	var b [16]byte
	for i := range b {
		b[i] = byte(f.Number(0, 255))
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	u, err := uuid.FromBytes(b[:])
	if err != nil {
		return uuid.NewString()
	}
	return u.String()
}
