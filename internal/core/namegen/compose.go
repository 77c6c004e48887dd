package namegen

import "namejar/internal/core/locale"

// Compose renders a surname and given name in the convention of family
//
//	jp: "田中 太郎"  surname first, one space
//	en: "John·Smith" given name first, middle dot
//	zh and anything else: "赵小明" plain concatenation
func Compose(surname, given string, family locale.Family) string {
	switch family {
	case locale.JP:
		return surname + " " + given
	case locale.EN:
		return given + "·" + surname
	default:
		return surname + given
	}
}

// Name is one drawn (surname, given name) pair
type Name struct {
	Surname  string
	Given    string
	Family   locale.Family
	Category Category
	Fallback bool
}

// String renders n with Compose
func (n Name) String() string { return Compose(n.Surname, n.Given, n.Family) }
