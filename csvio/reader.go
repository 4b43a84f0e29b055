package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/uyouii/natural-breaks-csv/common"
	"github.com/uyouii/natural-breaks-csv/model"
	"github.com/uyouii/natural-breaks-csv/utils"
	"go.uber.org/zap"
)

const utf8BOM = "\ufeff"

// ReadTable loads a whole CSV file. The first record is the header.
func ReadTable(ctx context.Context, path string) (*model.Table, error) {
	logger := utils.GetLogger(ctx)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	table, err := ParseTable(f)
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}

	logger.Debug("read csv", zap.String("path", path), zap.String("table", table.DebugString()))
	return table, nil
}

func ParseTable(r io.Reader) (*model.Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header", common.ErrorInvalidValue)
	}
	if err != nil {
		return nil, err
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return &model.Table{Header: header, Rows: rows}, nil
}

// NumericColumn parses every cell of the named column as a float.
func NumericColumn(table *model.Table, name string) ([]float64, error) {
	idx := table.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q not in %v", common.ErrorColumnNotFound, name, table.Header)
	}

	values := make([]float64, len(table.Rows))
	for i, row := range table.Rows {
		cell := strings.TrimSpace(row[idx])
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			// data rows start on line 2
			return nil, fmt.Errorf("%w: column %q line %d: %q is not a number",
				common.ErrorInvalidValue, name, i+2, cell)
		}
		values[i] = v
	}
	return values, nil
}
