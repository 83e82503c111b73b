package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindCreateProduto(t *testing.T, body string) (CreateProdutoRequest, error) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/me/produtos", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req CreateProdutoRequest
	err := c.ShouldBindJSON(&req)
	return req, err
}

func TestCreateProdutoRequestAceitaPrecoZero(t *testing.T) {
	req, err := bindCreateProduto(t, `{"nome":"Degustação","preco_normal":0}`)
	require.NoError(t, err, "preço zero é cadastro válido, não campo ausente")
	assert.Zero(t, req.PrecoNormal)
}

func TestCreateProdutoRequestRejeitaPrecoNegativo(t *testing.T) {
	_, err := bindCreateProduto(t, `{"nome":"Bolo","preco_normal":-5}`)
	assert.Error(t, err)
}

func TestCreateProdutoRequestExigeNome(t *testing.T) {
	_, err := bindCreateProduto(t, `{"preco_normal":10}`)
	assert.Error(t, err)
}
