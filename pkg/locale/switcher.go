package locale

// Document is everything on screen that depends on the active locale,
// resolved in one step so a render never mixes two languages.
type Document struct {
	Lang         Locale
	Dir          Direction
	FontFamily   string
	Title        string
	Placeholder  string
	AddButton    string
	ShowButton   string
	TrashAlign   Align
	SwitchAnchor Anchor
}

// Switcher cycles through Order.
type Switcher struct {
	dict  *Dictionary
	index int
}

// NewSwitcher starts the cycle at the given locale.
func NewSwitcher(dict *Dictionary, start Locale) (*Switcher, error) {
	s := &Switcher{dict: dict}
	if start == "" {
		start = English
	}
	found := false
	for i, l := range Order {
		if l == start {
			s.index = i
			found = true
			break
		}
	}
	if !found {
		return nil, &ConfigError{Locale: start}
	}
	return s, nil
}

// Current returns the active locale.
func (s *Switcher) Current() Locale {
	return Order[s.index]
}

// Next returns the locale Advance would move to.
func (s *Switcher) Next() Locale {
	return Order[(s.index+1)%len(Order)]
}

// Advance moves to the next locale, wrapping, and returns the resolved
// document for it. On error the switcher stays where it was.
func (s *Switcher) Advance() (Document, error) {
	next := (s.index + 1) % len(Order)
	doc, err := Resolve(s.dict, Order[next])
	if err != nil {
		return Document{}, err
	}
	s.index = next
	return doc, nil
}

// Document resolves the active locale's document.
func (s *Switcher) Document() (Document, error) {
	return Resolve(s.dict, s.Current())
}

// Resolve builds the document for l.
func Resolve(dict *Dictionary, l Locale) (Document, error) {
	dir := l.Direction()
	doc := Document{
		Lang:         l,
		Dir:          dir,
		FontFamily:   l.FontFamily(),
		TrashAlign:   dir.TrashAlign(),
		SwitchAnchor: dir.SwitchAnchor(),
	}
	targets := map[Key]*string{
		KeyTitle:       &doc.Title,
		KeyPlaceholder: &doc.Placeholder,
		KeyAddButton:   &doc.AddButton,
		KeyShowButton:  &doc.ShowButton,
	}
	for _, k := range StaticKeys {
		v, err := dict.Lookup(l, k)
		if err != nil {
			return Document{}, err
		}
		*targets[k] = v
	}
	return doc, nil
}
