package curriculum

// PendingLink is the link value of an item whose topic page has not been
// published yet. It never resolves to a navigation target.
const PendingLink = "#"

// Document is the full learning-path dataset, corresponding to
// data/learning-path.json.
type Document struct {
	Meta     Meta      `json:"meta"`
	Sections []Section `json:"sections"`
}

// Meta describes the dataset as a whole.
type Meta struct {
	Title   string `json:"title"`
	Version string `json:"version"`
	Updated string `json:"updated"`
}

// Section groups an ordered list of items under a heading. Section ids are
// unique within a document and double as TOC anchors.
type Section struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Items       []Item `json:"items"`
}

// Item is a single topic in the learning path.
type Item struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"desc,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// IsPending reports whether the item has no published page yet.
func (it Item) IsPending() bool {
	return IsPendingLink(it.Link)
}

// IsPendingLink reports whether link is the unpublished sentinel (or empty).
func IsPendingLink(link string) bool {
	return link == "" || link == PendingLink
}

// ItemCount returns the total number of items across all sections.
func (d *Document) ItemCount() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, s := range d.Sections {
		n += len(s.Items)
	}
	return n
}

// PendingCount returns the number of items that are not yet published.
func (d *Document) PendingCount() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, s := range d.Sections {
		for _, it := range s.Items {
			if it.IsPending() {
				n++
			}
		}
	}
	return n
}
