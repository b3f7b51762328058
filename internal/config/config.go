// internal/config/config.go
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// CarregarEnv lê o .env quando existir; em produção as variáveis já vêm do
// ambiente e a ausência do arquivo não é erro.
func CarregarEnv() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("arquivo .env não encontrado, usando variáveis do ambiente")
	}
}

// Env devolve a variável de ambiente ou o valor padrão.
func Env(chave, padrao string) string {
	if v := os.Getenv(chave); v != "" {
		return v
	}
	return padrao
}

// EnvLista devolve uma variável separada por vírgulas como fatia.
func EnvLista(chave string) []string {
	bruto := os.Getenv(chave)
	if bruto == "" {
		return nil
	}
	partes := strings.Split(bruto, ",")
	lista := make([]string, 0, len(partes))
	for _, p := range partes {
		if p = strings.TrimSpace(p); p != "" {
			lista = append(lista, p)
		}
	}
	return lista
}
