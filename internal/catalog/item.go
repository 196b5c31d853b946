package catalog

import (
	"strings"

	"golang.org/x/net/idna"
)

// Item is one listed domain. Everything derived from the identifier is
// computed once by NewItem; the zero value is not useful.
type Item struct {
	id         string
	tld        string
	name       string
	nameLength int
	hasDigit   bool
	order      int

	// Price and Description are shown on the card and in the detail dialog.
	Price       string
	Description string
}

// NewItem builds an Item for identifier at the given display position.
// The identifier is lowercased. It is split on its last dot: "a.b.com"
// yields TLD ".com" and name "a.b". An identifier without a dot has an
// empty TLD and is its own name.
func NewItem(identifier string, order int) Item {
	id := strings.ToLower(strings.TrimSpace(identifier))
	it := Item{id: id, name: id, order: order}
	if i := strings.LastIndexByte(id, '.'); i >= 0 {
		it.tld = id[i:]
		it.name = id[:i]
	}
	it.nameLength = len(it.name)
	for i := 0; i < len(it.name); i++ {
		if c := it.name[i]; c >= '0' && c <= '9' {
			it.hasDigit = true
			break
		}
	}
	return it
}

// ID returns the lowercased domain name.
func (it Item) ID() string { return it.id }

// TLD returns the suffix after the last dot, including the dot.
func (it Item) TLD() string { return it.tld }

// Name returns the identifier with its TLD removed.
func (it Item) Name() string { return it.name }

// NameLength is the byte length of Name.
func (it Item) NameLength() int { return it.nameLength }

// HasDigit reports whether Name contains an ASCII digit.
func (it Item) HasDigit() bool { return it.hasDigit }

// Order is the item's fixed position in the page.
func (it Item) Order() int { return it.order }

// DisplayName returns the Unicode form of punycode labels, e.g.
// "xn--clck-wpa.click" -> "clíck.click". Identifiers that do not decode
// are returned as is.
func (it Item) DisplayName() string {
	u, err := idna.Display.ToUnicode(it.id)
	if err != nil || u == "" {
		return it.id
	}
	return u
}
