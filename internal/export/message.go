// Package export renders quotes into shareable artifacts: the WhatsApp
// message text and a spreadsheet.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/maozinhaws/pintor-pro/internal/engine"
	"github.com/maozinhaws/pintor-pro/internal/model"
)

// DefaultCabecalho is used when the company profile carries no custom
// message header.
const DefaultCabecalho = "Prezado(a) [NOME DO CLIENTE], segue o orçamento do dia [DATA DE ABERTURA]."

// Placeholders recognized in the configurable header.
const (
	PlaceholderCliente      = "[NOME DO CLIENTE]"
	PlaceholderProfissional = "[NOME DO PROFISSIONAL OU EMPRESA]"
	PlaceholderDataAbertura = "[DATA DE ABERTURA]"
)

const dateLayout = "02/01/2006"

// Mensagem renders the quote as WhatsApp-formatted text. The output
// respects the quote's display format: "completo" shows measurements,
// areas and per-item values, "m2" drops the measurements and "valor"
// shows totals only. Totals are always recomputed, never read from the
// stored record. cfg may be nil.
func Mensagem(o *model.Orcamento, cfg *model.ConfigEmpresa) string {
	var b strings.Builder

	b.WriteString("*" + header(o, cfg) + "*\n\n")
	b.WriteString("*═══════════════════*\n*ORÇAMENTO DE PINTURA*\n*═══════════════════*\n\n")

	fmt.Fprintf(&b, "*CLIENTE*\nNome: %s\nTelefone: %s\nEndereço: %s\nLocal: %s\n\n",
		o.Cliente.Nome, o.Cliente.Telefone, o.Cliente.Endereco, o.Cliente.BairrosCidadeEstado)

	if o.PagadorDiferente && o.Pagador != nil {
		fmt.Fprintf(&b, "*PAGADOR*\nNome: %s\nTelefone: %s\nRelação: %s\n\n",
			o.Pagador.Nome, o.Pagador.Telefone, o.Pagador.Relacao)
	}

	b.WriteString("*SERVIÇOS*\n")
	for ci, c := range o.Comodos {
		fmt.Fprintf(&b, "\n*%d. %s*\n", ci+1, strings.ToUpper(c.Nome))
		if c.Observacoes != "" {
			fmt.Fprintf(&b, "   Obs: %s\n", c.Observacoes)
		}

		for ii := range c.Itens {
			item := &c.Itens[ii]
			fmt.Fprintf(&b, "\n   %d) *%s*\n", ii+1, item.Nome)
			if item.Descricao != "" {
				fmt.Fprintf(&b, "      %s\n", item.Descricao)
			}

			switch o.Formato {
			case model.FormatoCompleto:
				fmt.Fprintf(&b, "      Medidas: %sm × %sm\n", item.Base, item.Altura)
				fmt.Fprintf(&b, "      Área: %.2f%s\n", engine.CalcArea(item), areaUnit(item))
			case model.FormatoM2:
				fmt.Fprintf(&b, "      Área: %.2f%s\n", engine.CalcArea(item), areaUnit(item))
			}

			if len(item.Servicos) > 0 {
				fmt.Fprintf(&b, "      Serviços: %s\n", strings.Join(item.Servicos, ", "))
			}
			if o.Formato != model.FormatoValor && item.Valor != "" {
				fmt.Fprintf(&b, "      Valor: R$ %.2f\n", engine.ParseDecimal(item.Valor))
			}
		}
	}

	fmt.Fprintf(&b, "\n*ÁREA TOTAL: %.2fm²*\n", engine.TotalArea(o))
	if total := engine.TotalValue(o); total > 0 {
		fmt.Fprintf(&b, "*VALOR TOTAL: R$ %.2f*\n", total)
	}
	fmt.Fprintf(&b, "\n*VALIDADE:* %d dias\n", o.Validade)

	if len(o.FormasPagamento) > 0 {
		b.WriteString("\n*FORMAS DE PAGAMENTO*\n")
		for i, f := range o.FormasPagamento {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("• " + f)
		}
		b.WriteString("\n")
	}
	if o.Observacoes != "" {
		fmt.Fprintf(&b, "\n*OBSERVAÇÕES*\n%s\n", o.Observacoes)
	}

	b.WriteString("\n*═══════════════════*\n")
	fmt.Fprintf(&b, "*%s*\n", companyName(cfg))
	if cfg != nil {
		if cfg.Telefone != "" {
			fmt.Fprintf(&b, "📞 %s\n", cfg.Telefone)
		}
		if cfg.Email != "" {
			fmt.Fprintf(&b, "📧 %s\n", cfg.Email)
		}
		if cfg.Cnpj != "" {
			fmt.Fprintf(&b, "CNPJ: %s\n", cfg.Cnpj)
		}
	}

	return b.String()
}

// header expands the configurable greeting. Each placeholder is replaced
// at most once, matching how the template was historically processed.
func header(o *model.Orcamento, cfg *model.ConfigEmpresa) string {
	cabecalho := DefaultCabecalho
	if cfg != nil && cfg.MensagemPadrao != nil && cfg.MensagemPadrao.Cabecalho != "" {
		cabecalho = cfg.MensagemPadrao.Cabecalho
	}

	abertura := o.DataCriacao
	if abertura.IsZero() {
		abertura = time.Now()
	}

	msg := strings.Replace(cabecalho, PlaceholderCliente, o.Cliente.Nome, 1)
	msg = strings.Replace(msg, PlaceholderProfissional, companyName(cfg), 1)
	msg = strings.Replace(msg, PlaceholderDataAbertura, abertura.Format(dateLayout), 1)
	return msg
}

func companyName(cfg *model.ConfigEmpresa) string {
	if cfg == nil {
		return ""
	}
	return cfg.Nome
}

// areaUnit returns "m" for linear items and "m²" otherwise.
func areaUnit(item *model.ItemOrcamento) string {
	if engine.IsLinear(item) {
		return "m"
	}
	return "m²"
}
