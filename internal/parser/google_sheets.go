package parser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Beka01247/menu-order/internal/catalog"
	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Sheet columns, after a header row:
//
//	A id | B name | C description | D price | E popular | F ingredients |
//	G allergens | H prep minutes | I calories | J protein | K carbs | L fat | M image
//
// A row with only column A filled starts a category. A blank id is derived
// from the name.
const readRange = "A:M"

const (
	colID = iota
	colName
	colDescription
	colPrice
	colPopular
	colIngredients
	colAllergens
	colPrepMinutes
	colCalories
	colProtein
	colCarbs
	colFat
	colImage
)

type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(cfg Config) (*GoogleSheetsParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

func (p *GoogleSheetsParser) ParseCatalog(ctx context.Context, spreadsheetID string) ([]domain.MenuItem, error) {
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("no data found in spreadsheet")
	}

	return ParseRows(resp.Values)
}

// Source binds the parser to one spreadsheet so it can serve as a catalog
// loader.
func (p *GoogleSheetsParser) Source(spreadsheetID string) catalog.Loader {
	return sheetSource{parser: p, spreadsheetID: spreadsheetID}
}

type sheetSource struct {
	parser        *GoogleSheetsParser
	spreadsheetID string
}

func (s sheetSource) LoadCatalog(ctx context.Context) ([]domain.MenuItem, error) {
	return s.parser.ParseCatalog(ctx, s.spreadsheetID)
}

// ParseRows converts raw sheet values, header included, into menu items.
func ParseRows(rows [][]interface{}) ([]domain.MenuItem, error) {
	items := []domain.MenuItem{}
	var currentCategory domain.Category
	seen := make(map[string]bool)

	// skip header
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || isBlankRow(row) {
			continue
		}

		if isCategoryRow(row) {
			category, ok := domain.ParseCategory(cell(row, colID))
			if !ok {
				return nil, fmt.Errorf("row %d: unknown category %q", i+1, cell(row, colID))
			}
			currentCategory = category
			continue
		}

		if currentCategory == "" {
			return nil, fmt.Errorf("row %d: item before any category row", i+1)
		}

		item, err := parseItem(row, currentCategory)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("row %d: duplicate item id %s", i+1, item.ID)
		}
		seen[item.ID] = true

		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no menu items found in spreadsheet")
	}

	return items, nil
}

func parseItem(row []interface{}, category domain.Category) (domain.MenuItem, error) {
	name := cell(row, colName)
	if name == "" {
		return domain.MenuItem{}, fmt.Errorf("name is required")
	}

	price, err := decimal.NewFromString(cell(row, colPrice))
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("invalid price %q: %w", cell(row, colPrice), err)
	}
	if price.IsNegative() {
		return domain.MenuItem{}, fmt.Errorf("price must not be negative")
	}

	id := cell(row, colID)
	if id == "" {
		id = catalog.ItemID(name)
	}

	item := domain.MenuItem{
		ID:          id,
		Name:        name,
		Description: cell(row, colDescription),
		Price:       price,
		ImageName:   cell(row, colImage),
		Category:    category,
		IsPopular:   strings.EqualFold(cell(row, colPopular), "TRUE"),
		Ingredients: splitList(cell(row, colIngredients)),
		Allergens:   splitList(cell(row, colAllergens)),
	}

	if item.PreparationMinutes, err = nonNegativeInt(row, colPrepMinutes); err != nil {
		return domain.MenuItem{}, err
	}

	if cell(row, colCalories) != "" {
		var n domain.NutritionalInfo
		for col, dst := range map[int]*int{
			colCalories: &n.Calories,
			colProtein:  &n.Protein,
			colCarbs:    &n.Carbs,
			colFat:      &n.Fat,
		} {
			if *dst, err = nonNegativeInt(row, col); err != nil {
				return domain.MenuItem{}, err
			}
		}
		item.Nutrition = &n
	}

	return item, nil
}

func cell(row []interface{}, col int) string {
	if col >= len(row) || row[col] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[col]))
}

func isBlankRow(row []interface{}) bool {
	for col := range row {
		if cell(row, col) != "" {
			return false
		}
	}
	return true
}

func isCategoryRow(row []interface{}) bool {
	if cell(row, colID) == "" {
		return false
	}
	for col := colID + 1; col < len(row); col++ {
		if cell(row, col) != "" {
			return false
		}
	}
	return true
}

func nonNegativeInt(row []interface{}, col int) (int, error) {
	raw := cell(row, col)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("column %c: invalid number %q", 'A'+col, raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("column %c: must not be negative", 'A'+col)
	}
	return n, nil
}

func splitList(raw string) []string {
	result := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
