package holiday

import "time"

// BrazilSource lists Brazilian national holidays: the statutory fixed dates
// plus the movable feasts derived from the Easter computus.
type BrazilSource struct{}

func NewBrazilSource() *BrazilSource {
	return &BrazilSource{}
}

func (s *BrazilSource) HolidaysFor(year int) []time.Time {
	if year <= 0 {
		return nil
	}

	easter := easterSunday(year)

	holidays := []time.Time{
		Date(year, time.January, 1),    // Confraternização Universal
		easter.AddDate(0, 0, -47),      // Carnaval (terça-feira)
		easter.AddDate(0, 0, -2),       // Sexta-feira Santa
		Date(year, time.April, 21),     // Tiradentes
		Date(year, time.May, 1),        // Dia do Trabalho
		easter.AddDate(0, 0, 60),       // Corpus Christi
		Date(year, time.September, 7),  // Independência
		Date(year, time.October, 12),   // Nossa Senhora Aparecida
		Date(year, time.November, 2),   // Finados
		Date(year, time.November, 15),  // Proclamação da República
		Date(year, time.December, 25),  // Natal
	}

	// National holiday since Lei 14.759/2023
	if year >= 2024 {
		holidays = append(holidays, Date(year, time.November, 20)) // Consciência Negra
	}

	return holidays
}

// easterSunday computes Easter in the Gregorian calendar using the
// Meeus/Jones/Butcher algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return Date(year, time.Month(month), day)
}
