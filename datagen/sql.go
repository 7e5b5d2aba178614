package datagen

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// The generator emits plain SQL: one multi-row INSERT per table, string
// values escaped by doubling single quotes, NULL literals for absent
// optionals. The batches are ordered so that every foreign key already
// exists by the time it is referenced.

const timestampLayout = "2006-01-02 15:04:05"

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteTime(t time.Time) string {
	return "'" + t.Format(timestampLayout) + "'"
}

func quoteTimePtr(t *time.Time) string {
	if t == nil {
		return "NULL"
	}
	return quoteTime(*t)
}

func quotePtr(s *string) string {
	if s == nil {
		return "NULL"
	}
	return quote(*s)
}

func boolLit(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func writeBatch(w io.Writer, comment, insert string, rows []string) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "-- %s\n%s\n%s;\n\n", comment, insert, strings.Join(rows, ",\n"))
	return err
}

// WriteSQL renders the dataset as loadable INSERT batches.
func WriteSQL(w io.Writer, ds *Dataset) error {
	rows := make([]string, 0, len(ds.Users))
	for _, u := range ds.Users {
		rows = append(rows, fmt.Sprintf("(%s, %s, %s, %s)",
			quote(u.UserID), quote(u.Name), quote(u.Email), quote(u.SignupSource)))
	}
	if err := writeBatch(w, "Users",
		"INSERT INTO users (user_id, name, email, signup_source) VALUES", rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, p := range ds.Products {
		rows = append(rows, fmt.Sprintf("(%s, %s, %s, %s, %s, %s)",
			quote(p.ProductID), quote(p.Name), quote(p.Category),
			p.Price.StringFixed(2), quoteTime(p.CreatedAt), boolLit(p.IsActive)))
	}
	if err := writeBatch(w, "Products",
		"INSERT INTO products (product_id, name, category, price, created_at, is_active) VALUES", rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, o := range ds.Orders {
		rows = append(rows, fmt.Sprintf("(%s, %s, %s, %s, %s)",
			quote(o.OrderID), quote(o.UserID), quoteTime(o.OrderDate),
			quote(o.Status), o.TotalAmount.StringFixed(2)))
	}
	if err := writeBatch(w, "Orders",
		"INSERT INTO orders (order_id, user_id, order_date, status, total_amount) VALUES", rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, oi := range ds.OrderItems {
		rows = append(rows, fmt.Sprintf("(%s, %s, %s, %d, %s)",
			quote(oi.OrderItemID), quote(oi.OrderID), quote(oi.ProductID),
			oi.Quantity, oi.UnitPrice.StringFixed(2)))
	}
	if err := writeBatch(w, "Order Items",
		"INSERT INTO order_items (order_item_id, order_id, product_id, quantity, unit_price) VALUES", rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, r := range ds.Reviews {
		rows = append(rows, fmt.Sprintf("(%s, %s, %s, %d, %s, %s)",
			quote(r.ReviewID), quote(r.UserID), quote(r.ProductID),
			r.Rating, quote(r.Comment), quoteTime(r.ReviewDate)))
	}
	if err := writeBatch(w, "Reviews",
		"INSERT INTO reviews (review_id, user_id, product_id, rating, comment, review_date) VALUES", rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, c := range ds.Carts {
		rows = append(rows, fmt.Sprintf("(%s, %s, %s, %s)",
			quote(c.CartID), quote(c.UserID), quoteTime(c.CreatedAt), quote(c.Status)))
	}
	if err := writeBatch(w, "Carts",
		"INSERT INTO carts (cart_id, user_id, created_at, status) VALUES", rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, ci := range ds.CartItems {
		rows = append(rows, fmt.Sprintf("(%s, %s, %s, %s, %s)",
			quote(ci.CartItemID), quote(ci.CartID), quote(ci.ProductID),
			quoteTime(ci.AddedAt), quoteTimePtr(ci.RemovedAt)))
	}
	if err := writeBatch(w, "Cart Items",
		"INSERT INTO cart_items (cart_item_id, cart_id, product_id, added_at, removed_at) VALUES", rows); err != nil {
		return err
	}

	rows = rows[:0]
	for _, s := range ds.Sessions {
		rows = append(rows, fmt.Sprintf("(%s, %s, %s, %s, %s, %s)",
			quote(s.SessionID), quotePtr(s.UserID), quote(s.TrafficSource),
			quoteTime(s.SessionStart), quoteTime(s.SessionEnd), boolLit(s.MadePurchase)))
	}
	return writeBatch(w, "Sessions",
		"INSERT INTO sessions (session_id, user_id, traffic_source, session_start, session_end, made_purchase) VALUES", rows)
}
