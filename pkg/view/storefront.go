package view

type ProductCard struct {
	ID       string
	Name     string
	Price    string
	Category string
	Brand    string
	InStock  bool
	ImageURL string
}

type StorefrontPage struct {
	Products   []ProductCard
	Category   string
	SearchTerm string
}

type ProductImage struct {
	Color     string
	ColorCode string
	URL       string
}

type ProductDetail struct {
	ID          string
	Name        string
	Description string
	Price       string
	Category    string
	Brand       string
	InStock     bool
	Images      []ProductImage
}

type LoginForm struct {
	Email string
}
