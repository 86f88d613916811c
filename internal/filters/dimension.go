package filters

// dimension holds the selection and recency order of one multi-choice filter
type dimension[K comparable] struct {
	policy   Policy
	selected map[K]struct{}
	order    []K // most recently toggled first
	search   string
}

func newDimension[K comparable](policy Policy) *dimension[K] {
	return &dimension[K]{
		policy:   policy,
		selected: make(map[K]struct{}),
	}
}

func (d *dimension[K]) toggle(key K) {
	_, wasSelected := d.selected[key]

	switch d.policy {
	case PolicySingle:
		clear(d.selected)
		if !wasSelected {
			d.selected[key] = struct{}{}
		}
	default:
		if wasSelected {
			delete(d.selected, key)
		} else {
			d.selected[key] = struct{}{}
		}
	}

	d.promote(key)
}

// promote moves key to the front of the recency order
func (d *dimension[K]) promote(key K) {
	next := make([]K, 0, len(d.order)+1)
	next = append(next, key)
	for _, k := range d.order {
		if k != key {
			next = append(next, k)
		}
	}
	d.order = next
}

func (d *dimension[K]) isSelected(key K) bool {
	_, ok := d.selected[key]
	return ok
}

func (d *dimension[K]) count() int {
	return len(d.selected)
}

// selectedByRecency returns the selected keys, most recently toggled first
func (d *dimension[K]) selectedByRecency() []K {
	if len(d.selected) == 0 {
		return nil
	}
	out := make([]K, 0, len(d.selected))
	for _, k := range d.order {
		if d.isSelected(k) {
			out = append(out, k)
		}
	}
	return out
}

// arrange orders base by recency: keys present in the recency order come
// first in that order, the rest follow in base order. Keys outside base are
// left out.
func (d *dimension[K]) arrange(base []K) []K {
	if len(d.order) == 0 {
		return base
	}

	inBase := make(map[K]struct{}, len(base))
	for _, k := range base {
		inBase[k] = struct{}{}
	}

	out := make([]K, 0, len(base))
	placed := make(map[K]struct{}, len(d.order))
	for _, k := range d.order {
		if _, ok := inBase[k]; ok {
			out = append(out, k)
			placed[k] = struct{}{}
		}
	}
	for _, k := range base {
		if _, ok := placed[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}

// window applies the default cap, growing it so every selection stays visible
func (d *dimension[K]) window(arranged []K, limit int) []K {
	n := max(limit, d.count())
	if n >= len(arranged) {
		return arranged
	}
	return arranged[:n]
}

func (d *dimension[K]) reset() {
	clear(d.selected)
	d.order = nil
	d.search = ""
}
