package curriculum

import "strings"

// PageExtension is stripped from links and page paths before comparison.
const PageExtension = ".html"

// FlatEntry is one navigable item, lifted out of its section. Entries are
// rebuilt on every render and carry no identity between renders.
type FlatEntry struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Link         string `json:"link"`
	SectionTitle string `json:"sectionTitle"`
}

// IsPending reports whether the entry points at an unpublished topic.
func (e FlatEntry) IsPending() bool {
	return IsPendingLink(e.Link)
}

// Flatten returns every item of doc in reading order: sections in document
// order, items in section order.
func Flatten(doc *Document) []FlatEntry {
	entries := make([]FlatEntry, 0, doc.ItemCount())
	if doc == nil {
		return entries
	}
	for _, s := range doc.Sections {
		for _, it := range s.Items {
			entries = append(entries, FlatEntry{
				ID:           it.ID,
				Title:        it.Title,
				Link:         it.Link,
				SectionTitle: s.Title,
			})
		}
	}
	return entries
}

// Normalize reduces a link or page path to a comparable key: the relative
// prefix is trimmed, then the page extension. "./topics/a.html" and
// "../../topics/a.html" both become "topics/a".
func Normalize(p string) string {
	return strings.TrimSuffix(TrimRelative(p), PageExtension)
}

// TrimRelative drops a leading slash and any leading "./" or "../" segments.
func TrimRelative(p string) string {
	p = strings.TrimPrefix(p, "/")
	for {
		switch {
		case strings.HasPrefix(p, "./"):
			p = p[2:]
		case strings.HasPrefix(p, "../"):
			p = p[3:]
		default:
			return p
		}
	}
}

// Locate returns the index of the first entry whose normalized link equals
// the normalized currentPath, or -1. Pending entries never match.
func Locate(entries []FlatEntry, currentPath string) int {
	key := Normalize(currentPath)
	if key == "" {
		return -1
	}
	for i, e := range entries {
		if e.IsPending() {
			continue
		}
		if Normalize(e.Link) == key {
			return i
		}
	}
	return -1
}

// Neighbors locates currentPath and returns the entries directly before and
// after it. A neighbor may be pending; callers must not navigate to it. ok is
// false when the page is not in the path, in which case both neighbors are nil.
func Neighbors(entries []FlatEntry, currentPath string) (prev, next *FlatEntry, ok bool) {
	i := Locate(entries, currentPath)
	if i < 0 {
		return nil, nil, false
	}
	if i > 0 {
		e := entries[i-1]
		prev = &e
	}
	if i+1 < len(entries) {
		e := entries[i+1]
		next = &e
	}
	return prev, next, true
}
