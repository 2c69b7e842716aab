// Package locale holds the three-language dictionary and the cyclic language
// switcher that drives text, reading direction and mirrored layout.
package locale

import (
	"fmt"
	"strings"
)

// Locale is a language tag.
type Locale string

const (
	English Locale = "en"
	Chinese Locale = "zh"
	Arabic  Locale = "ar"
)

// Order is the cycle the switcher walks.
var Order = []Locale{English, Chinese, Arabic}

// Parse resolves a language tag to one of the supported locales.
func Parse(s string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	for _, o := range Order {
		if o == l {
			return l, nil
		}
	}
	return "", fmt.Errorf("locale: unsupported language %q", s)
}

// Direction is the reading direction of a locale.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Direction returns rtl for Arabic and ltr otherwise.
func (l Locale) Direction() Direction {
	if l == Arabic {
		return RTL
	}
	return LTR
}

// FontFamily is the body font stack for the locale.
func (l Locale) FontFamily() string {
	if l == Arabic {
		return "'Cairo', sans-serif"
	}
	return "'Inter', sans-serif"
}

// Align is a margin class that pushes an element to one edge of a row.
type Align string

const (
	// AlignEnd puts the trash icon on the right edge (ltr).
	AlignEnd Align = "ml-auto"
	// AlignStart puts the trash icon on the left edge (rtl).
	AlignStart Align = "mr-auto"
)

// TrashAlign is the delete-control alignment for a direction, keeping the
// control on the trailing edge.
func (d Direction) TrashAlign() Align {
	if d == RTL {
		return AlignStart
	}
	return AlignEnd
}

// Anchor is the fixed screen corner the language switch is pinned to.
type Anchor string

const (
	AnchorLeft  Anchor = "left-4"
	AnchorRight Anchor = "right-4"
)

// SwitchAnchor is the language-switch corner for a direction.
func (d Direction) SwitchAnchor() Anchor {
	if d == RTL {
		return AnchorRight
	}
	return AnchorLeft
}
