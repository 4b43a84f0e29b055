package cmd

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/uyouii/natural-breaks-csv/chart"
	"github.com/uyouii/natural-breaks-csv/cmd/config"
	"github.com/uyouii/natural-breaks-csv/common"
	"github.com/uyouii/natural-breaks-csv/csvio"
	"github.com/uyouii/natural-breaks-csv/jenks"
	"github.com/uyouii/natural-breaks-csv/model"
	"github.com/uyouii/natural-breaks-csv/utils"
)

type classifyArgs struct {
	inputFile  string
	outputFile string
	field      string
}

// classifyCSV reads the input file, classifies the field column, then plots,
// prints and writes the labeled rows sorted by class. Nothing is written if
// any step before the write fails.
func classifyCSV(ctx context.Context, out io.Writer, cfg *config.Config, args classifyArgs) error {
	logger := utils.GetLogger(ctx).With(zap.String("input", args.inputFile), zap.String("field", args.field))

	// the labels would overwrite the values they were computed from
	if cfg.LabelColumn == args.field {
		return fmt.Errorf("%w: label column %q is the classified field", common.ErrorInvalidInput, args.field)
	}

	table, err := csvio.ReadTable(ctx, args.inputFile)
	if err != nil {
		return err
	}
	values, err := csvio.NumericColumn(table, args.field)
	if err != nil {
		return err
	}

	nClass, err := classCount(cfg, values)
	if err != nil {
		return err
	}
	logger.Info("classifying column", zap.Int("rowCount", table.Len()), zap.Int("nClass", nClass))

	classification, err := jenks.ClassifyValues(ctx, values, nClass)
	if err != nil {
		return fmt.Errorf("classifying %s: %w", args.field, err)
	}

	labeled, err := table.WithColumn(cfg.LabelColumn, utils.IntsToStrings(classification.Labels))
	if err != nil {
		return err
	}
	result, err := labeled.SortedByKeys(classification.Labels)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if cfg.Plot {
		if err := chart.SaveThresholds(ctx, cfg.PlotFile, values, classification.Breaks, args.field); err != nil {
			return err
		}
	}

	if cfg.JSON {
		err = printSummary(out, newSummary(args.field, table.Len(), classification))
	} else {
		err = printTable(out, result)
	}
	if err != nil {
		return fmt.Errorf("printing result: %w", err)
	}

	return csvio.WriteTable(ctx, args.outputFile, result)
}

func classCount(cfg *config.Config, values []float64) (int, error) {
	if !cfg.AutoClasses() {
		return cfg.Classes, nil
	}
	return jenks.OptimalClassCount(values, cfg.MaxClasses, cfg.GVFThreshold)
}

type summary struct {
	Field      string       `json:"field"`
	Rows       int          `json:"rows"`
	Classes    int          `json:"classes"`
	Breaks     model.Breaks `json:"breaks"`
	GVF        float64      `json:"gvf"`
	ClassSizes []int        `json:"class_sizes"`
}

func newSummary(field string, rows int, c *model.Classification) *summary {
	return &summary{
		Field:      field,
		Rows:       rows,
		Classes:    c.NumClasses(),
		Breaks:     c.Breaks,
		GVF:        c.GVF,
		ClassSizes: c.ClassSizes,
	}
}
