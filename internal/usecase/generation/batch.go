package generation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/quoteviral/quoteviral/internal/dto"
	"github.com/quoteviral/quoteviral/internal/validation"
	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

// GenerateBatch renders one image per quote, cycling through the provided
// base images. Items are isolated: a failed item is reported in its slot
// and never aborts its siblings.
func (uc *UseCase) GenerateBatch(ctx context.Context, caller dto.Caller, params dto.BatchParams) (*dto.BatchResult, error) {
	start := time.Now()

	// 1. rate gate, batch bucket
	decision := uc.limiter.Check(ctx, caller.ClientID, "batch")
	if !decision.Allowed {
		err := &errs.RateLimitedError{RetryAfter: decision.RetryAfter, ResetAt: decision.ResetAt}
		uc.track(ctx, caller, "batch_generation", start, err, nil)

		return nil, err
	}

	// 2. reject malformed batches before any rendering starts
	if len(params.Images) == 0 {
		return nil, &errs.ValidationError{Reason: "no images provided"}
	}
	if len(params.Quotes) == 0 {
		return nil, &errs.ValidationError{Reason: "no quotes provided"}
	}

	for i, q := range params.Quotes {
		if _, err := validation.Text(q.Text, validation.MaxTextLength); err != nil {
			return nil, fmt.Errorf("GenerationUseCase - GenerateBatch - quote %d: %w", i, err)
		}
	}

	// 3. render items concurrently, quote i paired with image i mod len
	results := make([]dto.BatchItemResult, len(params.Quotes))

	g := new(errgroup.Group)
	g.SetLimit(uc.batchConcurrency)

	for i, quote := range params.Quotes {
		i, quote := i, quote
		g.Go(func() error {
			itemParams := params.Settings
			itemParams.ImageID = params.Images[i%len(params.Images)]
			itemParams.QuoteText = quote.Text

			results[i] = uc.generateItem(ctx, caller, i, itemParams)

			return nil
		})
	}

	_ = g.Wait() // workers never return errors

	batch := &dto.BatchResult{
		BatchID: newBatchID(),
		Total:   len(results),
		Results: results,
	}
	for _, r := range results {
		if r.Status == "fulfilled" {
			batch.Successful++
		} else {
			batch.Failed++
		}
	}

	uc.track(ctx, caller, "batch_generation", start, nil, map[string]string{
		"batch_id":   batch.BatchID,
		"total":      fmt.Sprintf("%d", batch.Total),
		"successful": fmt.Sprintf("%d", batch.Successful),
	})
	uc.tracker.Performance(ctx, "batch_generation", time.Since(start), map[string]string{
		"batch_size": fmt.Sprintf("%d", batch.Total),
	})

	return batch, nil
}

func (uc *UseCase) generateItem(ctx context.Context, caller dto.Caller, index int, params dto.GenerateParams) dto.BatchItemResult {
	result, err := uc.generate(ctx, caller, params, time.Now())
	if err != nil {
		return dto.BatchItemResult{
			Index:  index,
			Status: "rejected",
			Error:  err.Error(),
		}
	}

	return dto.BatchItemResult{
		Index:  index,
		Status: "fulfilled",
		Data: &dto.BatchItemData{
			GenerationID: result.GenerationID,
			Size:         len(result.Image),
		},
	}
}

func newBatchID() string {
	return fmt.Sprintf("batch_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
