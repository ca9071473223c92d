package view

type SummaryTile struct {
	Key     string
	Label   string
	Display string
}

type GraphBar struct {
	Day     string
	Date    string
	Amount  string
	Percent int // bar height relative to the busiest day
}

type DashboardPage struct {
	Tiles []SummaryTile
	Graph []GraphBar
}

type AdminProductRow struct {
	ID         string
	Name       string
	Price      string
	Category   string
	Brand      string
	InStock    bool
	ImageCount int
}

type ManageProductsPage struct {
	Rows       []AdminProductRow
	Total      int
	Page       int
	PageSize   int
	PageSizes  []int
	TotalPages int
	Sort       string
	Dir        string // asc|desc
}

type ConfirmDeletePage struct {
	ID         string
	Name       string
	ImageCount int
}
