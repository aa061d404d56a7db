package seeder

type Counts struct {
	Customers int // Rows in customers
	Sellers   int // Rows in sellers
	Products  int // Rows in products
	Orders    int // Rows in orders; items, payments and reviews derive from these
}

func DefaultCounts() Counts {
	return Counts{
		Customers: 200,
		Sellers:   50,
		Products:  100,
		Orders:    1000,
	}
}

type SeedConfig struct {
	Seed   uint64
	Counts Counts
	Quiet  bool // Suppress progress output
}
