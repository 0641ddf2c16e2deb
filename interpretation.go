package ror

// Band is a qualitative class of rate of return.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandModerate  Band = "moderate"
	BandPoor      Band = "poor"
)

// Lower bounds, in percent, of the bands. A value on a bound belongs to the
// higher band.
const (
	ExcellentThreshold Percent = 15
	GoodThreshold      Percent = 8
	ModerateThreshold  Percent = 0
)

// Style holds the display colors of a band.
type Style struct {
	Background string `json:"background" yaml:"background"`
	Text       string `json:"text" yaml:"text"`
	Border     string `json:"border" yaml:"border"`
}

// Interpretation is the fixed wording and style of a band.
type Interpretation struct {
	Band        Band   `json:"type" yaml:"type"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Style       Style  `json:"style" yaml:"style"`
}

var interpretations = map[Band]Interpretation{
	BandExcellent: {
		Band:        BandExcellent,
		Title:       "Excelente Rendimiento",
		Description: "Tu inversión ha generado un rendimiento excepcional. ¡Felicitaciones!",
		Style:       Style{Background: "#007BFF", Text: "white", Border: "#0056D2"},
	},
	BandGood: {
		Band:        BandGood,
		Title:       "Buen Rendimiento",
		Description: "Tu inversión ha tenido un rendimiento sólido y por encima del promedio del mercado.",
		Style:       Style{Background: "#007BFF", Text: "white", Border: "#0056D2"},
	},
	BandModerate: {
		Band:        BandModerate,
		Title:       "Rendimiento Moderado",
		Description: "Tu inversión ha generado ganancias, aunque el rendimiento es conservador.",
		Style:       Style{Background: "#f8f9fa", Text: "#001F3F", Border: "#007BFF"},
	},
	BandPoor: {
		Band:        BandPoor,
		Title:       "Rendimiento Negativo",
		Description: "Tu inversión ha tenido pérdidas. Considera revisar tu estrategia de inversión.",
		Style:       Style{Background: "#FF0000", Text: "white", Border: "#990000"},
	},
}

// Classify returns the band of p.
func Classify(p Percent) Band {
	switch {
	case p >= ExcellentThreshold:
		return BandExcellent
	case p >= GoodThreshold:
		return BandGood
	case p >= ModerateThreshold:
		return BandModerate
	default:
		return BandPoor
	}
}

// Interpret returns the interpretation of p.
func Interpret(p Percent) Interpretation { return interpretations[Classify(p)] }

// Bands lists every interpretation from the best to the worst band.
func Bands() []Interpretation {
	return []Interpretation{
		interpretations[BandExcellent],
		interpretations[BandGood],
		interpretations[BandModerate],
		interpretations[BandPoor],
	}
}

// Range describes the half-open percent interval of the band.
func (b Band) Range() string {
	switch b {
	case BandExcellent:
		return "≥ 15%"
	case BandGood:
		return "8% – 15%"
	case BandModerate:
		return "0% – 8%"
	default:
		return "< 0%"
	}
}
