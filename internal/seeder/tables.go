package seeder

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/avelev99/T-SQL-Framework-for-Sales-Performance-Retention/internal/types"
	"github.com/shopspring/decimal"
)

const (
	StateCode = "BG"

	ZipPrefixMin = 10000
	ZipPrefixMax = 99999 // exclusive

	StatusDelivered = "delivered"
)

var (
	ErrNotEnoughProducts = errors.New("not enough products")
	ErrEmptyReference    = errors.New("referenced table is empty")
)

var Cities = []string{
	"Sofia",
	"Plovdiv",
	"Varna",
	"Burgas",
	"Ruse",
	"Stara Zagora",
	"Pleven",
	"Sliven",
	"Dobrich",
	"Shumen",
}

var Categories = []string{
	"bed_bath_table",
	"health_beauty",
	"computers",
	"books",
	"toys",
	"sports",
	"groceries",
	"pet_shop",
	"auto",
	"furniture",
}

var (
	OrderStatuses = MustDistribution(
		[]string{StatusDelivered, "shipped", "canceled", "invoiced", "processing"},
		[]float64{0.70, 0.10, 0.05, 0.10, 0.05},
	)

	PaymentTypes = MustDistribution(
		[]string{"credit_card", "boleto", "voucher", "debit_card"},
		[]float64{0.75, 0.15, 0.05, 0.05},
	)
)

// Purchase timestamps fall in [PurchaseWindowStart, PurchaseWindowEnd].
var (
	PurchaseWindowStart = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	PurchaseWindowEnd   = time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)
)

type intRange struct{ lo, hi int } // [lo, hi)

var (
	nameLengthRange        = intRange{20, 100}
	descriptionLengthRange = intRange{50, 200}
	photosRange            = intRange{1, 5}
	weightRange            = intRange{100, 5000}
	lengthRange            = intRange{10, 100}
	heightRange            = intRange{1, 50}
	widthRange             = intRange{5, 70}
)

func (g *DataGenerator) zipPrefix() string {
	return strconv.Itoa(g.IntRange(ZipPrefixMin, ZipPrefixMax))
}

func (g *DataGenerator) draw(r intRange) int {
	return g.IntRange(r.lo, r.hi)
}

func GenerateCustomers(g *DataGenerator, n int) []types.Customer {
	customers := make([]types.Customer, n)
	for i := range customers {
		customers[i] = types.Customer{
			ID:            g.HexID(IDLength),
			UniqueID:      g.HexID(IDLength),
			ZipCodePrefix: g.zipPrefix(),
			City:          g.Choice(Cities),
			State:         StateCode,
		}
	}
	return customers
}

func GenerateSellers(g *DataGenerator, n int) []types.Seller {
	sellers := make([]types.Seller, n)
	for i := range sellers {
		sellers[i] = types.Seller{
			ID:            g.HexID(IDLength),
			ZipCodePrefix: g.zipPrefix(),
			City:          g.Choice(Cities),
			State:         StateCode,
		}
	}
	return sellers
}

func GenerateProducts(g *DataGenerator, n int) []types.Product {
	products := make([]types.Product, n)
	for i := range products {
		products[i] = types.Product{
			ID:                g.HexID(IDLength),
			Category:          g.Choice(Categories),
			NameLength:        g.draw(nameLengthRange),
			DescriptionLength: g.draw(descriptionLengthRange),
			PhotosQty:         g.draw(photosRange),
			WeightG:           g.draw(weightRange),
			LengthCm:          g.draw(lengthRange),
			HeightCm:          g.draw(heightRange),
			WidthCm:           g.draw(widthRange),
		}
	}
	return products
}

// DistinctCategories returns the categories used by products in order of
// first appearance.
func DistinctCategories(products []types.Product) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// GenerateCategoryTranslations maps each category to itself; there is no
// real translation source.
func GenerateCategoryTranslations(categories []string) []types.CategoryTranslation {
	translations := make([]types.CategoryTranslation, len(categories))
	for i, c := range categories {
		translations[i] = types.CategoryTranslation{Category: c, CategoryEnglish: c}
	}
	return translations
}

func GenerateOrders(g *DataGenerator, customers []types.Customer, n int) ([]types.Order, error) {
	if n > 0 && len(customers) == 0 {
		return nil, fmt.Errorf("%w: orders need customers", ErrEmptyReference)
	}

	orders := make([]types.Order, n)
	for i := range orders {
		status := g.Pick(OrderStatuses)
		purchase := g.Timestamp(PurchaseWindowStart, PurchaseWindowEnd)
		approved := purchase.Add(g.Days(0, 3))
		carrier := approved.Add(g.Days(1, 5))

		var delivered *time.Time
		if status == StatusDelivered {
			t := carrier.Add(g.Days(1, 7))
			delivered = &t
		}

		orders[i] = types.Order{
			ID:                    g.HexID(IDLength),
			CustomerID:            customers[g.rand.IntN(len(customers))].ID,
			Status:                status,
			PurchaseTimestamp:     purchase,
			ApprovedAt:            approved,
			DeliveredCarrierDate:  carrier,
			DeliveredCustomerDate: delivered,
			EstimatedDeliveryDate: purchase.Add(g.Days(3, 10)),
		}
	}
	return orders, nil
}

func GenerateOrderItems(g *DataGenerator, orders []types.Order, products []types.Product, sellers []types.Seller) ([]types.OrderItem, error) {
	if len(orders) > 0 && len(sellers) == 0 {
		return nil, fmt.Errorf("%w: order items need sellers", ErrEmptyReference)
	}

	items := make([]types.OrderItem, 0, len(orders)*2)
	for _, order := range orders {
		k := g.IntBetween(1, 3)
		picks, err := g.SampleDistinct(len(products), k)
		if err != nil {
			return nil, fmt.Errorf("%w for order %s: %v", ErrNotEnoughProducts, order.ID, err)
		}

		for idx, p := range picks {
			items = append(items, types.OrderItem{
				OrderID:           order.ID,
				OrderItemID:       idx + 1,
				ProductID:         products[p].ID,
				SellerID:          sellers[g.rand.IntN(len(sellers))].ID,
				Price:             g.Money(10, 500),
				FreightValue:      g.Money(2, 50),
				ShippingLimitDate: order.PurchaseTimestamp.Add(g.Days(1, 7)),
			})
		}
	}
	return items, nil
}

// GeneratePayments splits each order's item total into one or two payments.
// Each split gets independent noise, so splits only approximate the total.
func GeneratePayments(g *DataGenerator, items []types.OrderItem) []types.Payment {
	var orderIDs []string
	totals := make(map[string]decimal.Decimal)
	for _, item := range items {
		total, seen := totals[item.OrderID]
		if !seen {
			orderIDs = append(orderIDs, item.OrderID)
		}
		totals[item.OrderID] = total.Add(item.Price).Add(item.FreightValue)
	}

	payments := make([]types.Payment, 0, len(orderIDs))
	for _, orderID := range orderIDs {
		n := 1
		if !g.Chance(0.9) {
			n = 2
		}
		installments := g.IntBetween(1, 6)
		share := totals[orderID].Div(decimal.NewFromInt(int64(n)))

		for seq := 1; seq <= n; seq++ {
			paymentType := g.Pick(PaymentTypes)
			noise := decimal.NewFromFloat(g.Uniform(-5, 5))
			payments = append(payments, types.Payment{
				OrderID:      orderID,
				Sequential:   seq,
				Type:         paymentType,
				Installments: installments,
				Value:        share.Add(noise).Round(2),
			})
		}
	}
	return payments
}

func GenerateReviews(g *DataGenerator, orders []types.Order) []types.Review {
	reviews := make([]types.Review, len(orders))
	for i, order := range orders {
		id := g.HexID(IDLength)
		score := g.IntBetween(1, 5)
		creation := order.ApprovedAt.Add(g.Days(5, 40))
		reviews[i] = types.Review{
			ID:              id,
			OrderID:         order.ID,
			Score:           score,
			CreationDate:    creation,
			AnswerTimestamp: creation.Add(g.Days(1, 10)),
		}
	}
	return reviews
}
