package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID            string `json:"customer_id"`
	UniqueID      string `json:"customer_unique_id"`
	ZipCodePrefix string `json:"customer_zip_code_prefix"`
	City          string `json:"customer_city"`
	State         string `json:"customer_state"`
}

type Seller struct {
	ID            string `json:"seller_id"`
	ZipCodePrefix string `json:"seller_zip_code_prefix"`
	City          string `json:"seller_city"`
	State         string `json:"seller_state"`
}

type Product struct {
	ID                string `json:"product_id"`
	Category          string `json:"product_category_name"`
	NameLength        int    `json:"product_name_length"`
	DescriptionLength int    `json:"product_description_length"`
	PhotosQty         int    `json:"product_photos_qty"`
	WeightG           int    `json:"product_weight_g"`
	LengthCm          int    `json:"product_length_cm"`
	HeightCm          int    `json:"product_height_cm"`
	WidthCm           int    `json:"product_width_cm"`
}

type CategoryTranslation struct {
	Category        string `json:"product_category_name"`
	CategoryEnglish string `json:"product_category_name_english"`
}

type Order struct {
	ID                    string     `json:"order_id"`
	CustomerID            string     `json:"customer_id"`
	Status                string     `json:"order_status"`
	PurchaseTimestamp     time.Time  `json:"order_purchase_timestamp"`
	ApprovedAt            time.Time  `json:"order_approved_at"`
	DeliveredCarrierDate  time.Time  `json:"order_delivered_carrier_date"`
	DeliveredCustomerDate *time.Time `json:"order_delivered_customer_date"` // nil unless delivered
	EstimatedDeliveryDate time.Time  `json:"order_estimated_delivery_date"`
}

type OrderItem struct {
	OrderID           string          `json:"order_id"`
	OrderItemID       int             `json:"order_item_id"`
	ProductID         string          `json:"product_id"`
	SellerID          string          `json:"seller_id"`
	ShippingLimitDate time.Time       `json:"shipping_limit_date"`
	Price             decimal.Decimal `json:"price"`
	FreightValue      decimal.Decimal `json:"freight_value"`
}

type Payment struct {
	OrderID      string          `json:"order_id"`
	Sequential   int             `json:"payment_sequential"`
	Type         string          `json:"payment_type"`
	Installments int             `json:"payment_installments"`
	Value        decimal.Decimal `json:"payment_value"`
}

type Review struct {
	ID              string    `json:"review_id"`
	OrderID         string    `json:"order_id"`
	Score           int       `json:"review_score"`
	CommentTitle    string    `json:"review_comment_title"`
	CommentMessage  string    `json:"review_comment_message"`
	CreationDate    time.Time `json:"review_creation_date"`
	AnswerTimestamp time.Time `json:"review_answer_timestamp"`
}

// Dataset holds every generated table. Slices are never modified after the
// generator that produced them returns.
type Dataset struct {
	Customers            []Customer
	Sellers              []Seller
	Products             []Product
	CategoryTranslations []CategoryTranslation
	Orders               []Order
	OrderItems           []OrderItem
	Payments             []Payment
	Reviews              []Review
}

func (c Customer) Values() []interface{} {
	return []interface{}{c.ID, c.UniqueID, c.ZipCodePrefix, c.City, c.State}
}

func (s Seller) Values() []interface{} {
	return []interface{}{s.ID, s.ZipCodePrefix, s.City, s.State}
}

func (p Product) Values() []interface{} {
	return []interface{}{
		p.ID, p.Category, p.NameLength, p.DescriptionLength, p.PhotosQty,
		p.WeightG, p.LengthCm, p.HeightCm, p.WidthCm,
	}
}

func (c CategoryTranslation) Values() []interface{} {
	return []interface{}{c.Category, c.CategoryEnglish}
}

func (o Order) Values() []interface{} {
	var delivered interface{}
	if o.DeliveredCustomerDate != nil {
		delivered = *o.DeliveredCustomerDate
	}
	return []interface{}{
		o.ID, o.CustomerID, o.Status, o.PurchaseTimestamp, o.ApprovedAt,
		o.DeliveredCarrierDate, delivered, o.EstimatedDeliveryDate,
	}
}

func (i OrderItem) Values() []interface{} {
	return []interface{}{
		i.OrderID, i.OrderItemID, i.ProductID, i.SellerID, i.ShippingLimitDate,
		i.Price, i.FreightValue,
	}
}

func (p Payment) Values() []interface{} {
	return []interface{}{p.OrderID, p.Sequential, p.Type, p.Installments, p.Value}
}

func (r Review) Values() []interface{} {
	return []interface{}{
		r.ID, r.OrderID, r.Score, r.CommentTitle, r.CommentMessage,
		r.CreationDate, r.AnswerTimestamp,
	}
}
