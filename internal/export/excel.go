package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/maozinhaws/pintor-pro/internal/engine"
	"github.com/maozinhaws/pintor-pro/internal/model"
)

const sheetName = "Orçamento"

// planilhaHeader is the item table header.
var planilhaHeader = []string{
	"Cômodo",
	"Item",
	"Descrição",
	"Base (m)",
	"Altura (m)",
	"Área",
	"Serviços",
	"Valor (R$)",
}

var planilhaWidths = []float64{20, 25, 35, 12, 12, 12, 30, 14}

// Planilha renders the quote as an Excel workbook, one row per item plus
// a client block on top and totals at the bottom.
func Planilha(o *model.Orcamento, cfg *model.ConfigEmpresa) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create bold style: %w", err)
	}

	for i := range planilhaHeader {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, planilhaWidths[i]); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	row := 1
	writeInfo := func(label, value string) error {
		if value == "" {
			return nil
		}
		if err := setCell(f, 1, row, label); err != nil {
			return err
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellStyle(sheetName, cell, cell, boldStyle); err != nil {
			return err
		}
		if err := setCell(f, 2, row, value); err != nil {
			return err
		}
		row++
		return nil
	}

	info := []struct{ label, value string }{
		{"Empresa", companyName(cfg)},
		{"Cliente", o.Cliente.Nome},
		{"Telefone", o.Cliente.Telefone},
		{"Endereço", o.Cliente.Endereco},
		{"Local", o.Cliente.BairrosCidadeEstado},
		{"Status", string(o.Status)},
		{"Validade", fmt.Sprintf("%d dias", o.Validade)},
	}
	if !o.DataCriacao.IsZero() {
		info = append(info, struct{ label, value string }{"Data", o.DataCriacao.Format(dateLayout)})
	}
	for _, entry := range info {
		if err := writeInfo(entry.label, entry.value); err != nil {
			f.Close()
			return nil, err
		}
	}

	row++ // blank separator
	for i, header := range planilhaHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}
	row++

	for _, c := range o.Comodos {
		for ii := range c.Itens {
			item := &c.Itens[ii]
			area := fmt.Sprintf("%.2f%s", engine.CalcArea(item), areaUnit(item))
			cells := []interface{}{
				c.Nome,
				item.Nome,
				item.Descricao,
				item.Base,
				item.Altura,
				area,
				strings.Join(item.Servicos, ", "),
			}
			for i, v := range cells {
				if err := setCell(f, i+1, row, v); err != nil {
					f.Close()
					return nil, err
				}
			}
			if item.Valor != "" {
				if err := setCell(f, len(cells)+1, row, engine.ParseDecimal(item.Valor)); err != nil {
					f.Close()
					return nil, err
				}
			}
			row++
		}
	}

	row++
	totals := []struct {
		label string
		value interface{}
	}{
		{"ÁREA TOTAL", fmt.Sprintf("%.2fm²", engine.TotalArea(o))},
		{"VALOR TOTAL", engine.TotalValue(o)},
	}
	for _, total := range totals {
		if err := setCell(f, 1, row, total.label); err != nil {
			f.Close()
			return nil, err
		}
		if err := setCell(f, 2, row, total.value); err != nil {
			f.Close()
			return nil, err
		}
		start, _ := excelize.CoordinatesToCellName(1, row)
		end, _ := excelize.CoordinatesToCellName(2, row)
		if err := f.SetCellStyle(sheetName, start, end, boldStyle); err != nil {
			f.Close()
			return nil, err
		}
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellValue(sheetName, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	return nil
}
