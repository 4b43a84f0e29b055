package csvio

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/uyouii/natural-breaks-csv/model"
	"github.com/uyouii/natural-breaks-csv/utils"
	"go.uber.org/zap"
)

// WriteTable writes table to path through a temp file in the same directory,
// so path is either fully written or left untouched.
func WriteTable(ctx context.Context, path string, table *model.Table) (err error) {
	logger := utils.GetLogger(ctx)

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := EncodeTable(tmp, table); err != nil {
		return fmt.Errorf("write csv %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	logger.Info("wrote csv", zap.String("path", path), zap.Int("rowCount", table.Len()))
	return nil
}

func EncodeTable(w io.Writer, table *model.Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(table.Header); err != nil {
		return err
	}
	if err := writer.WriteAll(table.Rows); err != nil {
		return err
	}
	return writer.Error()
}
