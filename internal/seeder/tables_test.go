package seeder

import (
	"errors"
	"testing"

	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/types"
	"github.com/shopspring/decimal"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("Failed to parse decimal %q: %v", s, err)
	}
	return d
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func checkZip(t *testing.T, zip string) {
	t.Helper()
	n := 0
	for _, r := range zip {
		if r < '0' || r > '9' {
			t.Fatalf("Zip prefix %q is not numeric", zip)
		}
		n = n*10 + int(r-'0')
	}
	if n < ZipPrefixMin || n >= ZipPrefixMax {
		t.Errorf("Zip prefix %d outside [%d, %d)", n, ZipPrefixMin, ZipPrefixMax)
	}
}

func TestGenerateCustomers(t *testing.T) {
	g := NewDataGenerator(42)
	customers := GenerateCustomers(g, 300)

	if len(customers) != 300 {
		t.Fatalf("Expected 300 customers, got %d", len(customers))
	}
	for _, c := range customers {
		if len(c.ID) != IDLength || len(c.UniqueID) != IDLength {
			t.Errorf("Unexpected id lengths: %q %q", c.ID, c.UniqueID)
		}
		checkZip(t, c.ZipCodePrefix)
		if !contains(Cities, c.City) {
			t.Errorf("Unknown city %q", c.City)
		}
		if c.State != StateCode {
			t.Errorf("Expected state %s, got %s", StateCode, c.State)
		}
	}
}

func TestGenerateSellers(t *testing.T) {
	g := NewDataGenerator(42)
	sellers := GenerateSellers(g, 100)

	if len(sellers) != 100 {
		t.Fatalf("Expected 100 sellers, got %d", len(sellers))
	}
	for _, s := range sellers {
		if len(s.ID) != IDLength {
			t.Errorf("Unexpected id %q", s.ID)
		}
		checkZip(t, s.ZipCodePrefix)
		if !contains(Cities, s.City) {
			t.Errorf("Unknown city %q", s.City)
		}
		if s.State != StateCode {
			t.Errorf("Expected state %s, got %s", StateCode, s.State)
		}
	}
}

func TestGenerateProducts(t *testing.T) {
	g := NewDataGenerator(42)
	products := GenerateProducts(g, 500)

	inRange := func(v int, r intRange) bool { return v >= r.lo && v < r.hi }
	for _, p := range products {
		if !contains(Categories, p.Category) {
			t.Errorf("Unknown category %q", p.Category)
		}
		checks := []struct {
			name string
			v    int
			r    intRange
		}{
			{"name length", p.NameLength, nameLengthRange},
			{"description length", p.DescriptionLength, descriptionLengthRange},
			{"photos", p.PhotosQty, photosRange},
			{"weight", p.WeightG, weightRange},
			{"length", p.LengthCm, lengthRange},
			{"height", p.HeightCm, heightRange},
			{"width", p.WidthCm, widthRange},
		}
		for _, c := range checks {
			if !inRange(c.v, c.r) {
				t.Errorf("Product %s: %s %d outside [%d, %d)", p.ID, c.name, c.v, c.r.lo, c.r.hi)
			}
		}
	}
}

func TestCategoryTranslationsIdentity(t *testing.T) {
	products := []types.Product{
		{Category: "toys"}, {Category: "books"}, {Category: "toys"}, {Category: "auto"},
	}

	categories := DistinctCategories(products)
	if len(categories) != 3 || categories[0] != "toys" || categories[1] != "books" || categories[2] != "auto" {
		t.Fatalf("Expected first-appearance order [toys books auto], got %v", categories)
	}

	translations := GenerateCategoryTranslations(categories)
	for i, tr := range translations {
		if tr.Category != categories[i] || tr.CategoryEnglish != categories[i] {
			t.Errorf("Expected identity mapping for %s, got %+v", categories[i], tr)
		}
	}
}

func TestGenerateOrdersTimestampChain(t *testing.T) {
	g := NewDataGenerator(42)
	customers := GenerateCustomers(g, 20)
	orders, err := GenerateOrders(g, customers, 2000)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	customerIDs := make(map[string]bool)
	for _, c := range customers {
		customerIDs[c.ID] = true
	}

	for _, o := range orders {
		if !customerIDs[o.CustomerID] {
			t.Errorf("Order %s references unknown customer %s", o.ID, o.CustomerID)
		}
		if !contains(OrderStatuses.Labels(), o.Status) {
			t.Errorf("Unknown status %q", o.Status)
		}
		if o.PurchaseTimestamp.Before(PurchaseWindowStart) || o.PurchaseTimestamp.After(PurchaseWindowEnd) {
			t.Errorf("Purchase %v outside window", o.PurchaseTimestamp)
		}
		if o.ApprovedAt.Before(o.PurchaseTimestamp) {
			t.Errorf("Order %s approved before purchase", o.ID)
		}
		if !o.DeliveredCarrierDate.After(o.ApprovedAt) {
			t.Errorf("Order %s carrier date not after approval", o.ID)
		}
		if !o.EstimatedDeliveryDate.After(o.PurchaseTimestamp) {
			t.Errorf("Order %s estimated delivery not after purchase", o.ID)
		}

		delivered := o.Status == StatusDelivered
		if delivered != (o.DeliveredCustomerDate != nil) {
			t.Errorf("Order %s: status %s but customer date present=%v", o.ID, o.Status, o.DeliveredCustomerDate != nil)
		}
		if o.DeliveredCustomerDate != nil && !o.DeliveredCustomerDate.After(o.DeliveredCarrierDate) {
			t.Errorf("Order %s delivered to customer before carrier", o.ID)
		}
	}
}

func TestGenerateOrdersWithoutCustomers(t *testing.T) {
	g := NewDataGenerator(1)
	if _, err := GenerateOrders(g, nil, 1); !errors.Is(err, ErrEmptyReference) {
		t.Errorf("Expected ErrEmptyReference, got %v", err)
	}
	orders, err := GenerateOrders(g, nil, 0)
	if err != nil || len(orders) != 0 {
		t.Errorf("Expected no orders and no error, got %d, %v", len(orders), err)
	}
}

func TestGenerateOrderItems(t *testing.T) {
	g := NewDataGenerator(42)
	customers := GenerateCustomers(g, 10)
	sellers := GenerateSellers(g, 5)
	products := GenerateProducts(g, 8)
	orders, err := GenerateOrders(g, customers, 500)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	items, err := GenerateOrderItems(g, orders, products, sellers)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	purchase := make(map[string]types.Order)
	for _, o := range orders {
		purchase[o.ID] = o
	}

	byOrder := make(map[string][]types.OrderItem)
	var orderSequence []string
	for _, item := range items {
		if len(byOrder[item.OrderID]) == 0 {
			orderSequence = append(orderSequence, item.OrderID)
		}
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)

		o := purchase[item.OrderID]
		if !item.ShippingLimitDate.After(o.PurchaseTimestamp) ||
			item.ShippingLimitDate.Sub(o.PurchaseTimestamp) > 7*day {
			t.Errorf("Shipping limit %v not within 1..7 days of purchase %v", item.ShippingLimitDate, o.PurchaseTimestamp)
		}
		if item.Price.LessThan(mustDecimal(t, "10")) || item.Price.GreaterThan(mustDecimal(t, "500")) {
			t.Errorf("Price %s out of range", item.Price)
		}
		if item.FreightValue.LessThan(mustDecimal(t, "2")) || item.FreightValue.GreaterThan(mustDecimal(t, "50")) {
			t.Errorf("Freight %s out of range", item.FreightValue)
		}
	}

	if len(orderSequence) != len(orders) {
		t.Fatalf("Expected items for %d orders, got %d", len(orders), len(orderSequence))
	}
	for i, o := range orders {
		if orderSequence[i] != o.ID {
			t.Fatalf("Items are not in order-generation order at %d", i)
		}
		rows := byOrder[o.ID]
		if len(rows) < 1 || len(rows) > 3 {
			t.Errorf("Order %s has %d items", o.ID, len(rows))
		}
		seen := make(map[string]bool)
		for j, item := range rows {
			if item.OrderItemID != j+1 {
				t.Errorf("Order %s item %d has sequence %d", o.ID, j, item.OrderItemID)
			}
			if seen[item.ProductID] {
				t.Errorf("Order %s repeats product %s", o.ID, item.ProductID)
			}
			seen[item.ProductID] = true
		}
	}
}

func TestGenerateOrderItemsNotEnoughProducts(t *testing.T) {
	g := NewDataGenerator(42)
	customers := GenerateCustomers(g, 1)
	sellers := GenerateSellers(g, 1)
	orders, err := GenerateOrders(g, customers, 50)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	_, err = GenerateOrderItems(g, orders, nil, sellers)
	if !errors.Is(err, ErrNotEnoughProducts) {
		t.Errorf("Expected ErrNotEnoughProducts, got %v", err)
	}
}

func TestGeneratePayments(t *testing.T) {
	g := NewDataGenerator(42)
	items := []types.OrderItem{
		{OrderID: "b", OrderItemID: 1, Price: mustDecimal(t, "100.00"), FreightValue: mustDecimal(t, "10.00")},
		{OrderID: "b", OrderItemID: 2, Price: mustDecimal(t, "50.50"), FreightValue: mustDecimal(t, "4.50")},
		{OrderID: "a", OrderItemID: 1, Price: mustDecimal(t, "20.00"), FreightValue: mustDecimal(t, "2.00")},
	}

	for run := 0; run < 200; run++ {
		payments := GeneratePayments(g, items)

		byOrder := make(map[string][]types.Payment)
		for _, p := range payments {
			byOrder[p.OrderID] = append(byOrder[p.OrderID], p)
		}
		if payments[0].OrderID != "b" {
			t.Fatalf("Expected first-appearance order, got %s first", payments[0].OrderID)
		}

		totals := map[string]decimal.Decimal{"a": mustDecimal(t, "22"), "b": mustDecimal(t, "165")}
		for orderID, rows := range byOrder {
			if len(rows) < 1 || len(rows) > 2 {
				t.Fatalf("Order %s has %d payments", orderID, len(rows))
			}
			share := totals[orderID].Div(decimal.NewFromInt(int64(len(rows))))
			for i, p := range rows {
				if p.Sequential != i+1 {
					t.Errorf("Order %s payment %d has sequence %d", orderID, i, p.Sequential)
				}
				if p.Installments != rows[0].Installments {
					t.Errorf("Order %s payments disagree on installments", orderID)
				}
				if p.Installments < 1 || p.Installments > 6 {
					t.Errorf("Installments %d out of range", p.Installments)
				}
				if !contains(PaymentTypes.Labels(), p.Type) {
					t.Errorf("Unknown payment type %q", p.Type)
				}
				if p.Value.Sub(share).Abs().GreaterThan(mustDecimal(t, "5.01")) {
					t.Errorf("Payment %s too far from share %s", p.Value, share)
				}
			}
		}
	}
}

func TestGenerateReviews(t *testing.T) {
	g := NewDataGenerator(42)
	customers := GenerateCustomers(g, 5)
	orders, err := GenerateOrders(g, customers, 300)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	reviews := GenerateReviews(g, orders)
	if len(reviews) != len(orders) {
		t.Fatalf("Expected %d reviews, got %d", len(orders), len(reviews))
	}
	for i, r := range reviews {
		o := orders[i]
		if r.OrderID != o.ID {
			t.Errorf("Review %d references %s, expected %s", i, r.OrderID, o.ID)
		}
		if r.Score < 1 || r.Score > 5 {
			t.Errorf("Score %d out of range", r.Score)
		}
		if r.CommentTitle != "" || r.CommentMessage != "" {
			t.Errorf("Expected empty comments, got %q %q", r.CommentTitle, r.CommentMessage)
		}
		if r.CreationDate.Before(o.ApprovedAt) || r.AnswerTimestamp.Before(r.CreationDate) {
			t.Errorf("Review %s timestamps out of order", r.ID)
		}
	}
}
