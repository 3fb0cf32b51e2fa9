package domain

// Option sets offered for the enumerated product and client fields. Values are
// stored as free text; membership is only checked by a strict Validator.

type Color string

const (
	ColorPreta    Color = "PRETA"
	ColorBranca   Color = "BRANCA"
	ColorAzul     Color = "AZUL"
	ColorCinza    Color = "CINZA"
	ColorVerde    Color = "VERDE"
	ColorVermelha Color = "VERMELHA"
	ColorBege     Color = "BEGE"
	ColorMarrom   Color = "MARROM"
)

var Colors = []Color{ColorPreta, ColorBranca, ColorAzul, ColorCinza, ColorVerde, ColorVermelha, ColorBege, ColorMarrom}

func (c Color) Valid() bool { return oneOf(c, Colors) }

type Size string

const (
	SizeP Size = "P"
	SizeM Size = "M"
	SizeG Size = "G"
)

var Sizes = []Size{SizeP, SizeM, SizeG}

func (s Size) Valid() bool { return oneOf(s, Sizes) }

type Fit string

const (
	FitSlim    Fit = "SLIM"
	FitRegular Fit = "REGULAR"
	FitOver    Fit = "OVER"
)

var Fits = []Fit{FitSlim, FitRegular, FitOver}

func (f Fit) Valid() bool { return oneOf(f, Fits) }

type Gender string

const (
	GenderMasculino Gender = "MASCULINO"
	GenderFeminino  Gender = "FEMININO"
	GenderUnissex   Gender = "UNISSEX"
)

var Genders = []Gender{GenderMasculino, GenderFeminino, GenderUnissex}

func (g Gender) Valid() bool { return oneOf(g, Genders) }

type Group string

const (
	GroupTShirtMC Group = "T-SHIRT MC"
	GroupCalca    Group = "CALCA"
	GroupBermuda  Group = "BERMUDA"
	GroupCasaco   Group = "CASACO"
	GroupCamisaMC Group = "CAMISA MC"
)

var Groups = []Group{GroupTShirtMC, GroupCalca, GroupBermuda, GroupCasaco, GroupCamisaMC}

func (g Group) Valid() bool { return oneOf(g, Groups) }

type Subgroup string

const (
	SubgroupSlim    Subgroup = "SLIM"
	SubgroupOver    Subgroup = "OVER"
	SubgroupRegular Subgroup = "REGULAR"
)

var Subgroups = []Subgroup{SubgroupSlim, SubgroupOver, SubgroupRegular}

func (s Subgroup) Valid() bool { return oneOf(s, Subgroups) }

type Sex string

const (
	SexMasculino Sex = "MASCULINO"
	SexFeminino  Sex = "FEMININO"
	SexOutro     Sex = "OUTRO"
)

var Sexes = []Sex{SexMasculino, SexFeminino, SexOutro}

// Valid reports whether s is a known option. Sex is optional, so the empty
// value is valid too.
func (s Sex) Valid() bool { return s == "" || oneOf(s, Sexes) }

func oneOf[T comparable](v T, set []T) bool {
	for _, o := range set {
		if o == v {
			return true
		}
	}
	return false
}
