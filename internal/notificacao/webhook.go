// internal/notificacao/webhook.go
package notificacao

import (
	"github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// Notificador envia alertas operacionais para um webhook externo. URL vazia
// desliga o envio sem ramificar os chamadores.
type Notificador struct {
	URL     string
	cliente *resty.Client
}

// NovoNotificador cria um notificador apontando para a URL configurada.
func NovoNotificador(url string) *Notificador {
	return &Notificador{URL: url, cliente: resty.New()}
}

// AlertaConversaoSemVenda avisa que uma reunião marcada como "comprou" ainda
// não tem venda correspondente. Falha de envio é registrada e engolida: o
// alerta é melhor-esforço, nunca bloqueia a operação.
func (n *Notificador) AlertaConversaoSemVenda(agendamentoID uint, leadNome string) {
	if n == nil || n.URL == "" {
		return
	}
	payload := map[string]interface{}{
		"mensagem":      "Alerta: reunião convertida sem venda correspondente, aguardando aprovação",
		"agendamentoId": agendamentoID,
		"lead":          leadNome,
	}
	resp, err := n.cliente.R().SetBody(payload).Post(n.URL)
	if err != nil {
		logrus.WithError(err).WithField("agendamentoId", agendamentoID).
			Warn("erro ao enviar webhook de conversão sem venda")
		return
	}
	if resp.IsError() {
		logrus.WithFields(logrus.Fields{
			"agendamentoId": agendamentoID,
			"status":        resp.StatusCode(),
		}).Warn("webhook de conversão sem venda respondeu com erro")
	}
}
