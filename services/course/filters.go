package courseService

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"coursehub/apperror"
	"coursehub/models/course"
)

// FilterOption is one facet shown by the storefront. Key is the query parameter it drives.
type FilterOption struct {
	Label   string         `json:"label"`
	Key     string         `json:"key"`
	Options []FilterBucket `json:"options"`
}

type FilterBucket struct {
	Label      string `json:"label"`
	Value      string `json:"value"`
	IsSelected bool   `json:"isSelected"`
}

var ratingBuckets = []FilterBucket{
	{Label: "4.5 & up", Value: "4.5"},
	{Label: "4.0 & up", Value: "4.0"},
	{Label: "3.5 & up", Value: "3.5"},
	{Label: "3.0 & up", Value: "3.0"},
}

var durationBuckets = []FilterBucket{
	{Label: "0-1 Hour", Value: DurationShort},
	{Label: "1-3 Hours", Value: DurationMedium},
	{Label: "3-6 Hours", Value: DurationLong},
	{Label: "6+ Hours", Value: DurationExtraLong},
}

var priceBuckets = []FilterBucket{
	{Label: "Paid", Value: "price-paid"},
	{Label: "Free", Value: "price-free"},
}

// GetFilters builds the facet metadata. Categories and levels come from the catalog,
// the other facets are fixed.
func (s *Service) GetFilters(ctx context.Context) ([]FilterOption, error) {
	allCourses, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperror.NewUnexpected("Failed to fetch filters!", err)
	}
	categories, err := s.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	categoryOptions := make([]FilterBucket, 0, len(categories))
	for _, c := range categories {
		categoryOptions = append(categoryOptions, FilterBucket{
			Label: c.Name,
			Value: strconv.FormatUint(uint64(c.ID), 10),
		})
	}

	return []FilterOption{
		{Label: "Category", Key: "category", Options: categoryOptions},
		{Label: "Ratings", Key: "ratings", Options: slices.Clone(ratingBuckets)},
		{Label: "Video Duration", Key: "duration", Options: slices.Clone(durationBuckets)},
		{Label: "Level", Key: "levelFilter", Options: levelBuckets(allCourses)},
		{Label: "Price", Key: "price", Options: slices.Clone(priceBuckets)},
	}, nil
}

// levelBuckets lists the levels used by published courses, known levels first.
func levelBuckets(courses []course.Course) []FilterBucket {
	present := make(map[string]struct{})
	for _, c := range courses {
		if c.IsPublished && c.Level != "" {
			present[c.Level] = struct{}{}
		}
	}

	var levels []string
	for _, l := range course.Levels {
		if _, ok := present[l]; ok {
			levels = append(levels, l)
			delete(present, l)
		}
	}
	var other []string
	for l := range present {
		other = append(other, l)
	}
	slices.Sort(other)
	levels = append(levels, other...)

	buckets := make([]FilterBucket, 0, len(levels))
	for _, l := range levels {
		buckets = append(buckets, FilterBucket{Label: levelLabel(l), Value: l})
	}
	return buckets
}

// levelLabel turns "ALL_LEVELS" into "All Levels".
func levelLabel(level string) string {
	words := strings.Fields(strings.ReplaceAll(strings.ToLower(level), "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
