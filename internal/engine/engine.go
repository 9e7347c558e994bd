// Package engine implements the quote computation rules: area inference,
// aggregate totals and pending-data detection.
//
// Every function here is pure and total. Numeric fields arrive as strings
// typed by the user and may be transiently blank or malformed while a quote
// is being edited, so parsing never fails: bad input degrades to zero.
package engine

import (
	"strconv"
	"strings"

	"github.com/maozinhaws/pintor-pro/internal/model"
)

// ParseDecimal parses a user-typed numeric string. Blank or malformed input
// yields 0. Comma decimal separators are accepted ("3,5" == "3.5").
func ParseDecimal(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// CalcArea returns the measured quantity of an item. When exactly one of
// base/altura is nonzero the item is priced per linear meter and the result
// is that single dimension (baseboard length, crown molding and the like).
// When both are nonzero the result is base × altura. Both zero yields 0.
//
// The inference is authoritative: the stored MetroLinear flag is not
// consulted here.
func CalcArea(item *model.ItemOrcamento) float64 {
	base := ParseDecimal(item.Base)
	altura := ParseDecimal(item.Altura)

	if (base > 0 && altura == 0) || (base == 0 && altura > 0) {
		return max(base, altura)
	}
	return base * altura
}

// IsLinear reports whether an item is priced per linear meter: exactly one of
// its two dimensions is filled in. Used for unit display ("m" vs "m²").
func IsLinear(item *model.ItemOrcamento) bool {
	base := ParseDecimal(item.Base)
	altura := ParseDecimal(item.Altura)
	return (base > 0 && altura == 0) || (base == 0 && altura > 0)
}

// RoomFootprint returns the room's own declared floor area
// (largura × altura), or 0 unless both dimensions are present.
func RoomFootprint(c *model.Comodo) float64 {
	largura := c.Medidas.Largura
	altura := c.Medidas.Altura
	if largura > 0 && altura > 0 {
		return largura * altura
	}
	return 0
}

// TotalArea sums, over all rooms, the room footprint (counted in full
// whenever both dimensions are declared) plus the area of every item not
// explicitly excluded from the calculation.
func TotalArea(o *model.Orcamento) float64 {
	var total float64
	for ci := range o.Comodos {
		c := &o.Comodos[ci]
		total += RoomFootprint(c)
		for ii := range c.Itens {
			if c.Itens[ii].Incluido() {
				total += CalcArea(&c.Itens[ii])
			}
		}
	}
	return total
}

// TotalValue sums the item-level values of every room. Room-level flat
// pricing (Comodo.Valor) is deliberately not included: the product has
// always displayed this asymmetry against TotalArea and changing it would
// silently alter quoted totals.
func TotalValue(o *model.Orcamento) float64 {
	var total float64
	for ci := range o.Comodos {
		for ii := range o.Comodos[ci].Itens {
			total += ParseDecimal(o.Comodos[ci].Itens[ii].Valor)
		}
	}
	return total
}

// PricePreview returns the displayed value for per-area pricing
// (cobrarPorMetro): the measured quantity times the declared rate. It is
// recomputed on demand and never persisted.
func PricePreview(area float64, rate string) float64 {
	return area * ParseDecimal(rate)
}

// HasMissingClientData reports whether the quote's client is missing any of
// the fields needed before the quote can confidently be sent: telephone,
// address or neighborhood/city/state.
func HasMissingClientData(o *model.Orcamento) bool {
	return strings.TrimSpace(o.Cliente.Telefone) == "" ||
		strings.TrimSpace(o.Cliente.Endereco) == "" ||
		strings.TrimSpace(o.Cliente.BairrosCidadeEstado) == ""
}
