package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/junaidrashid-git/ecommerce-realtime/models"
	"github.com/junaidrashid-git/ecommerce-realtime/services"
	"github.com/junaidrashid-git/ecommerce-realtime/store"
	"github.com/tealeg/xlsx"
)

const sheetName = "Products"

var sheetHeaders = []string{
	"ID", "Title", "Description", "Code", "Price",
	"Stock", "Category", "Thumbnails", "Status",
}

// ImportResult summarises an Import run.
type ImportResult struct {
	Created int `json:"created_count"`
	Updated int `json:"updated_count"`
	Skipped int `json:"skipped_count"`
}

// Export writes every product as one row of an xlsx workbook.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	products, err := s.All(ctx)
	if err != nil {
		return err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range sheetHeaders {
		header.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID)
		row.AddCell().SetString(p.Title)
		row.AddCell().SetString(p.Description)
		row.AddCell().SetString(p.Code)
		row.AddCell().SetFloat(p.Price)
		row.AddCell().SetInt(p.Stock)
		row.AddCell().SetString(p.Category)
		row.AddCell().SetString(strings.Join(p.Thumbnails, ","))
		row.AddCell().SetString(strconv.FormatBool(p.Status))
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Import upserts products from the first sheet of an xlsx workbook laid out
// like Export's output. Rows with an ID that resolves update that product;
// every other valid row creates a new one. Invalid rows are skipped.
func (s *Service) Import(ctx context.Context, r io.ReaderAt, size int64) (*ImportResult, error) {
	book, err := xlsx.OpenReaderAt(r, size)
	if err != nil {
		return nil, services.Invalid("unreadable xlsx file: %v", err)
	}
	if len(book.Sheets) == 0 || book.Sheets[0].MaxRow < 2 {
		return nil, services.Invalid("xlsx file is empty or missing header row")
	}

	sheet := book.Sheets[0]
	result := &ImportResult{}

	for i := 1; i < sheet.MaxRow; i++ {
		row := sheet.Rows[i]
		if row == nil {
			result.Skipped++
			continue
		}
		get := func(index int) string {
			if index < len(row.Cells) {
				return strings.TrimSpace(row.Cells[index].String())
			}
			return ""
		}

		id, in, ok := parseRow(get)
		if !ok {
			result.Skipped++
			continue
		}

		if id != "" {
			existing, err := s.products.GetProduct(ctx, id)
			switch {
			case err == nil:
				if validatePatch(in) != nil {
					result.Skipped++
					continue
				}
				apply(existing, in)
				if err := s.products.SaveProduct(ctx, existing); err != nil {
					return result, fmt.Errorf("import row %d: %w", i+1, err)
				}
				result.Updated++
				continue
			case !errors.Is(err, store.ErrNotFound):
				return result, fmt.Errorf("import row %d: %w", i+1, err)
			}
		}

		if validateNew(in) != nil {
			result.Skipped++
			continue
		}
		product := &models.Product{
			Title:       *in.Title,
			Description: *in.Description,
			Code:        *in.Code,
			Price:       *in.Price,
			Stock:       *in.Stock,
			Category:    *in.Category,
			Thumbnails:  in.Thumbnails,
			Status:      in.Status == nil || *in.Status,
		}
		if err := s.products.CreateProduct(ctx, product); err != nil {
			return result, fmt.Errorf("import row %d: %w", i+1, err)
		}
		result.Created++
	}

	if result.Created > 0 || result.Updated > 0 {
		s.notifier.Publish(services.EventProductsCreated)
	}
	return result, nil
}

func parseRow(get func(int) string) (string, ProductInput, bool) {
	var in ProductInput

	str := func(v string) *string {
		if v == "" {
			return nil
		}
		return &v
	}
	in.Title = str(get(1))
	in.Description = str(get(2))
	in.Code = str(get(3))
	in.Category = str(get(6))

	if v := get(4); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", in, false
		}
		in.Price = &price
	}
	if v := get(5); v != "" {
		stock, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "", in, false
		}
		n := int(stock)
		in.Stock = &n
	}

	in.Thumbnails = []string{}
	for _, part := range strings.Split(get(7), ",") {
		if part = strings.TrimSpace(part); part != "" {
			in.Thumbnails = append(in.Thumbnails, part)
		}
	}

	if v := get(8); v != "" {
		status, err := strconv.ParseBool(strings.ToLower(v))
		if err != nil {
			return "", in, false
		}
		in.Status = &status
	}

	return get(0), in, true
}
