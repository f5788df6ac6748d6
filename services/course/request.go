package courseService

// DefaultPageSize applies when a request carries no usable page size.
const DefaultPageSize = 10

// CourseListRequest is the loosely-typed listing request built from the query string.
// Page is 0-indexed.
type CourseListRequest struct {
	Page          int
	PageSize      int
	Search        string
	CategoryID    *uint
	Level         string
	Language      string
	MinPrice      *float64
	MaxPrice      *float64
	SortBy        string
	SortDirection string

	// multi-select filters sent by the storefront
	Category    []string
	Ratings     []string
	Duration    []string
	LevelFilter []string
}
