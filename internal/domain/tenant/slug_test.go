package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSlug(t *testing.T) {
	t.Parallel()

	cases := []struct {
		nome string
		want string
	}{
		{"Doces da Vó", "doces-da-v"},
		{"Confeitaria  da   Ana", "confeitaria-da-ana"},
		{"BOLOS & TORTAS", "bolos-tortas"},
		{"  Doce Mel  ", "doce-mel"},
		{"ja-um-slug", "ja-um-slug"},
		{"under_score", "under-score"},
		{"---", ""},
		{"", ""},
		{"123 Sabores", "123-sabores"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.nome, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, DeriveSlug(tc.nome))
		})
	}
}

func TestDeriveSlugIdempotente(t *testing.T) {
	t.Parallel()

	for _, nome := range []string{"Doces da Vó", "Bolos & Tortas LTDA", "a--b__c"} {
		once := DeriveSlug(nome)
		assert.Equal(t, once, DeriveSlug(once), "derivar duas vezes deve ser estável: %q", nome)
	}
}

func TestIsValidSlug(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidSlug("doces-da-vo"))
	assert.True(t, IsValidSlug("loja123"))

	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug("Doces"))
	assert.False(t, IsValidSlug("com espaço"))
	assert.False(t, IsValidSlug("-borda"))
	assert.False(t, IsValidSlug("duplo--hifen"))
}
