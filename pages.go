package pdf2image

// Pages describes which document pages an operation targets.
//
// Values are created with [All], [Range], or [Specific] and resolved
// against the document's page count when the operation runs. Page numbers
// are 1-based, matching the poppler tools. Out-of-range pages are dropped
// silently rather than reported as errors, so a selector may resolve to
// an empty set.
type Pages interface {
	resolve(pageCount int) []int
}

// All selects every page, from 1 through the document's page count.
func All() Pages { return allPages{} }

// Range selects pages lo through hi inclusive, in ascending order.
// Endpoints outside the document are clipped to the valid page range.
func Range(lo, hi int) Pages { return pageRange{lo: lo, hi: hi} }

// Specific selects exactly the given pages, in the given order.
// Duplicates are preserved: a page listed twice is processed twice.
func Specific(pages ...int) Pages {
	return pageList{pages: append([]int(nil), pages...)}
}

type allPages struct{}

func (allPages) resolve(pageCount int) []int {
	out := make([]int, 0, pageCount)
	for p := 1; p <= pageCount; p++ {
		out = append(out, p)
	}
	return out
}

type pageRange struct {
	lo, hi int
}

func (r pageRange) resolve(pageCount int) []int {
	lo := max(r.lo, 1)
	hi := min(r.hi, pageCount)
	if lo > hi {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		out = append(out, p)
	}
	return out
}

type pageList struct {
	pages []int
}

func (l pageList) resolve(pageCount int) []int {
	out := make([]int, 0, len(l.pages))
	for _, p := range l.pages {
		if p >= 1 && p <= pageCount {
			out = append(out, p)
		}
	}
	return out
}
