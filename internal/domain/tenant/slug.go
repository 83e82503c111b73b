package tenant

import (
	"strings"
	"unicode"
)

// DeriveSlug transforma o nome de exibição no identificador público da
// loja: minúsculas, espaços viram hífen, o resto que não for [a-z0-9-] é
// descartado e hífens duplicados/colaterais são colapsados.
//
// A função é idempotente: DeriveSlug(DeriveSlug(x)) == DeriveSlug(x).
func DeriveSlug(nome string) string {
	s := strings.ToLower(strings.TrimSpace(nome))

	var b strings.Builder
	pendingHyphen := false

	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingHyphen = true
		}
	}

	return b.String()
}

// IsValidSlug aceita apenas slugs que a própria derivação produziria.
func IsValidSlug(slug string) bool {
	return slug != "" && slug == DeriveSlug(slug)
}
