package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldText normaliza para búsqueda: sin acentos, minúsculas y espacios colapsados,
// de modo que "feijao" encuentra "Feijão".
func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// matcher compara un término ya normalizado contra varios campos.
type matcher struct {
	term string
}

func newMatcher(search string) matcher {
	return matcher{term: foldText(search)}
}

// empty indica que no hay filtro.
func (m matcher) empty() bool { return m.term == "" }

// match es verdadero si el término aparece en alguno de los campos.
func (m matcher) match(fields ...string) bool {
	if m.empty() {
		return true
	}
	for _, f := range fields {
		if strings.Contains(foldText(f), m.term) {
			return true
		}
	}
	return false
}
