package jenks

import (
	"context"
	"fmt"

	"github.com/uyouii/natural-breaks-csv/model"
	"github.com/uyouii/natural-breaks-csv/utils"
	"go.uber.org/zap"
)

// ClassifyValues computes the breaks of values, labels every value in input
// order and scores the fit.
func ClassifyValues(ctx context.Context, values []float64, nClass int) (res *model.Classification, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("ClassifyValues recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Int("valueCount", len(values)))
			res, err = nil, fmt.Errorf("classifying %d values: %v", len(values), r)
		}
	}()

	breaks, err := ComputeBreaks(values, nClass)
	if err != nil {
		logger.Error("ComputeBreaks failed", zap.Error(err), zap.Int("nClass", nClass),
			zap.Int("valueCount", len(values)))
		return nil, err
	}
	logger.Debug("computed breaks", zap.Float64s("breaks", utils.FormatFloats(breaks, LogPrecision)))

	labels, err := Classify(values, breaks)
	if err != nil {
		logger.Error("Classify failed", zap.Error(err))
		return nil, err
	}

	classification := &model.Classification{
		Breaks:     breaks,
		Labels:     labels,
		GVF:        goodnessOfVarianceFit(values, labels, nClass),
		ClassSizes: ClassSizes(labels, nClass),
	}

	logger.Info("classification done", zap.Int("nClass", nClass), zap.Int("valueCount", len(values)),
		zap.Float64("gvf", utils.FormatFloat(classification.GVF, LogPrecision)),
		zap.Ints("classSizes", classification.ClassSizes))

	return classification, nil
}
