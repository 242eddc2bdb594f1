// Package export renders the sales views as an xlsx workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/angelmondragon/salesboard/internal/aggregation"
	"github.com/angelmondragon/salesboard/pkg/models"
)

// Sheet names, in workbook order.
const (
	SheetSales   = "Vendas"
	SheetRanking = "Ranking"
	SheetStores  = "Lojas"
)

// ContentType is the MIME type of the rendered workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	salesHeader   = []any{"ID", "Data", "Promotor", "Loja", "Produto", "Cliente", "Valor (R$)"}
	rankingHeader = []any{"Posição", "Nome", "Cargo", "Faturamento (R$)", "Vendas", "Meta", "Progresso (%)"}
	storesHeader  = []any{"Loja", "Localização", "Faturamento (R$)", "Vendas", "Participação (%)"}
)

// Input is what the workbook is built from. Sales are already filtered;
// ranking and store rollup are computed over them.
type Input struct {
	Sales       []models.Sale
	Salespeople []models.Salesperson
	Stores      []models.Store
}

// Write renders the workbook to w.
func Write(w io.Writer, in Input) error {
	f, err := Workbook(in)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// Workbook builds the three-sheet workbook. The caller closes it.
func Workbook(in Input) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("creating header style: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SheetSales); err != nil {
		_ = f.Close()
		return nil, err
	}
	for _, name := range []string{SheetRanking, SheetStores} {
		if _, err := f.NewSheet(name); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	sales := aggregation.Newest(in.Sales)
	salesRows := make([][]any, 0, len(sales))
	for _, s := range sales {
		salesRows = append(salesRows, []any{
			s.ID,
			s.Date.String(),
			aggregation.SalespersonName(in.Salespeople, s.SalespersonID),
			aggregation.StoreName(in.Stores, s.StoreID),
			s.Product,
			s.Customer,
			s.Amount.InexactFloat64(),
		})
	}

	ranking := aggregation.Ranking(in.Sales, in.Salespeople)
	rankingRows := make([][]any, 0, len(ranking))
	for _, r := range ranking {
		rankingRows = append(rankingRows, []any{
			r.Position,
			r.Name,
			r.Role.String(),
			r.TotalRevenue.InexactFloat64(),
			r.Count,
			r.Target,
			r.Progress,
		})
	}

	rollup := aggregation.StoreRollup(in.Sales, in.Stores)
	storeRows := make([][]any, 0, len(rollup))
	for _, r := range rollup {
		storeRows = append(storeRows, []any{
			r.Name,
			r.Location,
			r.Revenue.InexactFloat64(),
			r.SalesCount,
			r.Share,
		})
	}

	sheets := []struct {
		name   string
		header []any
		rows   [][]any
	}{
		{SheetSales, salesHeader, salesRows},
		{SheetRanking, rankingHeader, rankingRows},
		{SheetStores, storesHeader, storeRows},
	}
	for _, sheet := range sheets {
		if err := writeSheet(f, sheet.name, sheet.header, sheet.rows, headerStyle); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, name string, header []any, rows [][]any, headerStyle int) error {
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("writing %s header: %w", name, err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(name, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("styling %s header: %w", name, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", name, i+2, err)
		}
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(name, "A", lastCol, 18)
}
