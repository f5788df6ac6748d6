package courseService

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"coursehub/models/course"
	courseRepository "coursehub/repository/course"
)

// Sort keys understood by sortCourses.
const (
	SortMostPopular    = "most-popular"
	SortHighestRated   = "highest-rated"
	SortNewest         = "newest"
	SortPriceLowToHigh = "price-low-to-high"
	SortPriceHighToLow = "price-high-to-low"
	SortTitle          = "title"
	SortPrice          = "price"
	SortRating         = "rating"
	SortEnrollment     = "enrollmentcount"
)

// Duration bucket tags, in minutes: short up to 60, medium 61-180, long 181-360, extra-long above 360.
const (
	DurationShort     = "short"
	DurationMedium    = "medium"
	DurationLong      = "long"
	DurationExtraLong = "extra-long"
)

// baseSpec picks exactly one store-side selection: search, then category, then level, then all.
func baseSpec(req CourseListRequest) courseRepository.Spec {
	switch {
	case req.Search != "":
		return courseRepository.BySearch(req.Search)
	case req.CategoryID != nil:
		return courseRepository.ByCategory(*req.CategoryID)
	case req.Level != "":
		return courseRepository.ByLevel(req.Level)
	default:
		return courseRepository.All()
	}
}

// applyFilters narrows the base selection with the storefront and legacy filters, in order.
func applyFilters(courses []course.Course, req CourseListRequest) []course.Course {
	courses = filterByCategories(courses, req.Category)
	courses = filterByMinRating(courses, req.Ratings)
	courses = filterByDuration(courses, req.Duration)
	courses = filterByLevels(courses, req.LevelFilter)
	return filterLegacy(courses, req)
}

func keep(courses []course.Course, pred func(course.Course) bool) []course.Course {
	out := make([]course.Course, 0, len(courses))
	for _, c := range courses {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

// filterByCategories keeps courses in any listed category. Entries that are not positive
// integers are dropped; nothing usable means no filtering.
func filterByCategories(courses []course.Course, raw []string) []course.Course {
	ids := make(map[uint]struct{}, len(raw))
	for _, s := range raw {
		id, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || id <= 0 {
			continue
		}
		ids[uint(id)] = struct{}{}
	}
	if len(ids) == 0 {
		return courses
	}
	return keep(courses, func(c course.Course) bool {
		_, ok := ids[c.CategoryID]
		return ok
	})
}

// filterByMinRating applies the highest listed threshold. Unparseable entries count as 0.
func filterByMinRating(courses []course.Course, raw []string) []course.Course {
	if len(raw) == 0 {
		return courses
	}
	var minRating float64
	for _, s := range raw {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			continue
		}
		if v > minRating {
			minRating = v
		}
	}
	if minRating <= 0 {
		return courses
	}
	return keep(courses, func(c course.Course) bool { return c.Rating >= minRating })
}

func inDurationBucket(tag string, minutes int) bool {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case DurationShort:
		return minutes <= 60
	case DurationMedium:
		return minutes > 60 && minutes <= 180
	case DurationLong:
		return minutes > 180 && minutes <= 360
	case DurationExtraLong:
		return minutes > 360
	}
	return false
}

// filterByDuration replaces the set with the de-duplicated union of every bucket's matches,
// tag by tag. An empty union leaves the set untouched, so unknown tags are a no-op.
func filterByDuration(courses []course.Course, tags []string) []course.Course {
	if len(tags) == 0 {
		return courses
	}
	var union []course.Course
	seen := make(map[uint]struct{})
	for _, tag := range tags {
		for _, c := range courses {
			if !inDurationBucket(tag, c.Duration) {
				continue
			}
			if _, dup := seen[c.ID]; dup {
				continue
			}
			seen[c.ID] = struct{}{}
			union = append(union, c)
		}
	}
	if len(union) == 0 {
		return courses
	}
	return union
}

func filterByLevels(courses []course.Course, levels []string) []course.Course {
	if len(levels) == 0 {
		return courses
	}
	return keep(courses, func(c course.Course) bool {
		for _, l := range levels {
			if strings.EqualFold(strings.TrimSpace(l), c.Level) {
				return true
			}
		}
		return false
	})
}

func filterLegacy(courses []course.Course, req CourseListRequest) []course.Course {
	if req.Language != "" {
		courses = keep(courses, func(c course.Course) bool { return c.Language == req.Language })
	}
	if req.MinPrice != nil {
		courses = keep(courses, func(c course.Course) bool { return c.Price >= *req.MinPrice })
	}
	if req.MaxPrice != nil {
		courses = keep(courses, func(c course.Course) bool { return c.Price <= *req.MaxPrice })
	}
	return courses
}

// sortCourses orders courses in place. The sort is stable so equal keys keep their order.
func sortCourses(courses []course.Course, sortBy, direction string) {
	asc := strings.EqualFold(strings.TrimSpace(direction), "asc")

	directed := func(c int) int {
		if asc {
			return c
		}
		return -c
	}

	var compare func(a, b course.Course) int
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case SortHighestRated:
		compare = func(a, b course.Course) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortNewest:
		compare = func(a, b course.Course) int { return b.CreatedAt.Compare(a.CreatedAt) }
	case SortPriceLowToHigh:
		compare = func(a, b course.Course) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceHighToLow:
		compare = func(a, b course.Course) int { return cmp.Compare(b.Price, a.Price) }
	case SortTitle:
		compare = func(a, b course.Course) int {
			return directed(strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)))
		}
	case SortPrice:
		compare = func(a, b course.Course) int { return directed(cmp.Compare(a.Price, b.Price)) }
	case SortRating:
		compare = func(a, b course.Course) int { return directed(cmp.Compare(a.Rating, b.Rating)) }
	case SortEnrollment:
		compare = func(a, b course.Course) int { return directed(cmp.Compare(a.EnrollmentCount, b.EnrollmentCount)) }
	default: // most-popular
		compare = func(a, b course.Course) int { return cmp.Compare(b.EnrollmentCount, a.EnrollmentCount) }
	}

	slices.SortStableFunc(courses, compare)
}

// paginate returns the requested 0-indexed window; pages past the end are empty.
func paginate(courses []course.Course, page, pageSize int) []course.Course {
	if page > len(courses)/pageSize {
		return []course.Course{}
	}
	start := page * pageSize
	if start >= len(courses) {
		return []course.Course{}
	}
	end := min(start+pageSize, len(courses))
	return courses[start:end]
}
