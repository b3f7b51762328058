package usuario

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoliticaVisibilidade(t *testing.T) {
	p := NovaPoliticaVisibilidade([]string{" Gestora@Escola.com ", ""})

	assert.True(t, p.PodeVerTudo(Usuario{IsAdmin: true}))
	assert.True(t, p.PodeVerTudo(Usuario{Cargo: CargoSupervisor}))
	assert.True(t, p.PodeVerTudo(Usuario{Cargo: CargoVendedor, Email: "gestora@escola.com"}))
	assert.False(t, p.PodeVerTudo(Usuario{Cargo: CargoVendedor, Email: "vendedor@escola.com"}))
	assert.False(t, p.PodeVerTudo(Usuario{Cargo: CargoSDR}))
}

func TestCargoValido(t *testing.T) {
	assert.True(t, CargoValido(CargoVendedor))
	assert.True(t, CargoValido(CargoSDR))
	assert.True(t, CargoValido(CargoSupervisor))
	assert.False(t, CargoValido("estagiario"))
}
