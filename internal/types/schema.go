package types

type ColumnKind int

const (
	KindText ColumnKind = iota
	KindInteger
	KindDecimal
	KindTimestamp
)

func (k ColumnKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindTimestamp:
		return "timestamp"
	default:
		return "text"
	}
}

type Column struct {
	Name     string
	Kind     ColumnKind
	Nullable bool
}

// TableSchema describes one output table: its column layout, the file it is
// written to and the tables whose identifiers it references.
type TableSchema struct {
	Name         string
	FileName     string
	Columns      []Column
	Dependencies []string
}

// Table is a schema plus its generated rows, each row ordered like Columns.
type Table struct {
	TableSchema
	Rows [][]interface{}
}

func (s TableSchema) Header() []string {
	header := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		header[i] = col.Name
	}
	return header
}

const (
	TableCustomers            = "customers"
	TableSellers              = "sellers"
	TableProducts             = "products"
	TableCategoryTranslations = "product_category_translation"
	TableOrders               = "orders"
	TableOrderItems           = "order_items"
	TablePayments             = "order_payments"
	TableReviews              = "order_reviews"
)

var (
	CustomersSchema = TableSchema{
		Name:     TableCustomers,
		FileName: "customers.csv",
		Columns: []Column{
			{Name: "customer_id"},
			{Name: "customer_unique_id"},
			{Name: "customer_zip_code_prefix"},
			{Name: "customer_city"},
			{Name: "customer_state"},
		},
	}

	SellersSchema = TableSchema{
		Name:     TableSellers,
		FileName: "sellers.csv",
		Columns: []Column{
			{Name: "seller_id"},
			{Name: "seller_zip_code_prefix"},
			{Name: "seller_city"},
			{Name: "seller_state"},
		},
	}

	ProductsSchema = TableSchema{
		Name:     TableProducts,
		FileName: "products.csv",
		Columns: []Column{
			{Name: "product_id"},
			{Name: "product_category_name"},
			{Name: "product_name_length", Kind: KindInteger},
			{Name: "product_description_length", Kind: KindInteger},
			{Name: "product_photos_qty", Kind: KindInteger},
			{Name: "product_weight_g", Kind: KindInteger},
			{Name: "product_length_cm", Kind: KindInteger},
			{Name: "product_height_cm", Kind: KindInteger},
			{Name: "product_width_cm", Kind: KindInteger},
		},
	}

	CategoryTranslationsSchema = TableSchema{
		Name:     TableCategoryTranslations,
		FileName: "product_category_translation.csv",
		Columns: []Column{
			{Name: "product_category_name"},
			{Name: "product_category_name_english"},
		},
		Dependencies: []string{TableProducts},
	}

	OrdersSchema = TableSchema{
		Name:     TableOrders,
		FileName: "orders.csv",
		Columns: []Column{
			{Name: "order_id"},
			{Name: "customer_id"},
			{Name: "order_status"},
			{Name: "order_purchase_timestamp", Kind: KindTimestamp},
			{Name: "order_approved_at", Kind: KindTimestamp},
			{Name: "order_delivered_carrier_date", Kind: KindTimestamp},
			{Name: "order_delivered_customer_date", Kind: KindTimestamp, Nullable: true},
			{Name: "order_estimated_delivery_date", Kind: KindTimestamp},
		},
		Dependencies: []string{TableCustomers},
	}

	OrderItemsSchema = TableSchema{
		Name:     TableOrderItems,
		FileName: "order_items.csv",
		Columns: []Column{
			{Name: "order_id"},
			{Name: "order_item_id", Kind: KindInteger},
			{Name: "product_id"},
			{Name: "seller_id"},
			{Name: "shipping_limit_date", Kind: KindTimestamp},
			{Name: "price", Kind: KindDecimal},
			{Name: "freight_value", Kind: KindDecimal},
		},
		Dependencies: []string{TableOrders, TableProducts, TableSellers},
	}

	PaymentsSchema = TableSchema{
		Name:     TablePayments,
		FileName: "order_payments.csv",
		Columns: []Column{
			{Name: "order_id"},
			{Name: "payment_sequential", Kind: KindInteger},
			{Name: "payment_type"},
			{Name: "payment_installments", Kind: KindInteger},
			{Name: "payment_value", Kind: KindDecimal},
		},
		Dependencies: []string{TableOrderItems},
	}

	ReviewsSchema = TableSchema{
		Name:     TableReviews,
		FileName: "order_reviews.csv",
		Columns: []Column{
			{Name: "review_id"},
			{Name: "order_id"},
			{Name: "review_score", Kind: KindInteger},
			{Name: "review_comment_title"},
			{Name: "review_comment_message"},
			{Name: "review_creation_date", Kind: KindTimestamp},
			{Name: "review_answer_timestamp", Kind: KindTimestamp},
		},
		Dependencies: []string{TableOrders},
	}
)

// Schemas lists every table in generation order.
func Schemas() []TableSchema {
	return []TableSchema{
		CustomersSchema,
		SellersSchema,
		ProductsSchema,
		CategoryTranslationsSchema,
		OrdersSchema,
		OrderItemsSchema,
		PaymentsSchema,
		ReviewsSchema,
	}
}

// Tables flattens the dataset into generation-ordered tables.
func (d *Dataset) Tables() []Table {
	tables := make([]Table, 0, 8)
	add := func(schema TableSchema, n int, row func(i int) []interface{}) {
		rows := make([][]interface{}, n)
		for i := 0; i < n; i++ {
			rows[i] = row(i)
		}
		tables = append(tables, Table{TableSchema: schema, Rows: rows})
	}

	add(CustomersSchema, len(d.Customers), func(i int) []interface{} { return d.Customers[i].Values() })
	add(SellersSchema, len(d.Sellers), func(i int) []interface{} { return d.Sellers[i].Values() })
	add(ProductsSchema, len(d.Products), func(i int) []interface{} { return d.Products[i].Values() })
	add(CategoryTranslationsSchema, len(d.CategoryTranslations), func(i int) []interface{} { return d.CategoryTranslations[i].Values() })
	add(OrdersSchema, len(d.Orders), func(i int) []interface{} { return d.Orders[i].Values() })
	add(OrderItemsSchema, len(d.OrderItems), func(i int) []interface{} { return d.OrderItems[i].Values() })
	add(PaymentsSchema, len(d.Payments), func(i int) []interface{} { return d.Payments[i].Values() })
	add(ReviewsSchema, len(d.Reviews), func(i int) []interface{} { return d.Reviews[i].Values() })

	return tables
}
