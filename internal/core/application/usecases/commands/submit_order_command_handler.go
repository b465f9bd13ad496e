package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"digisales/internal/core/domain/model/cart"
	"digisales/internal/core/ports"
)

// ErrPartialBatch anchors errors.Is checks for submissions where some order
// lines failed while others were accepted.
var ErrPartialBatch = errors.New("some order lines failed")

// FailedLine pairs a rejected item code with the error that rejected it.
type FailedLine struct {
	ItemCode string
	Err      error
}

// PartialBatchError reports a submission in which at least one aggregated
// line was rejected by the gateway. Accepted lines are already committed on
// the backend; the caller decides which items to retain for retry.
type PartialBatchError struct {
	Failed []FailedLine
	Total  int
}

func (e *PartialBatchError) Error() string {
	codes := make([]string, 0, len(e.Failed))
	for _, f := range e.Failed {
		codes = append(codes, f.ItemCode)
	}
	return fmt.Sprintf(
		"%s: %d of %d (%s)",
		ErrPartialBatch, len(e.Failed), e.Total, strings.Join(codes, ", "),
	)
}

func (e *PartialBatchError) Unwrap() error {
	return ErrPartialBatch
}

// FailedItemCodes returns the stock codes of the rejected lines in
// submission order.
func (e *PartialBatchError) FailedItemCodes() []string {
	codes := make([]string, 0, len(e.Failed))
	for _, f := range e.Failed {
		codes = append(codes, f.ItemCode)
	}
	return codes
}

// SubmitOrderCommandHandler commits an aggregated cart to a session.
//
// Each aggregated line goes to the gateway as its own request; the requests
// run concurrently and the handler waits for all of them before reporting.
// A failure in one line never cancels the others, so the batch degrades to
// a partial result rather than an all-or-nothing outcome.
type SubmitOrderCommandHandler struct {
	gateway ports.PosGateway
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
func NewSubmitOrderCommandHandler(gateway ports.PosGateway) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		gateway: gateway,
	}
}

// Handle aggregates the raw cart occurrences into distinct (item, quantity)
// lines and submits each line to the gateway.
//
// Returns nil when every line is accepted and a PartialBatchError listing
// the rejected lines otherwise.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lines := cart.AggregateItems(cmd.Items())

	results := make([]error, len(lines))
	var wg sync.WaitGroup

	for i, line := range lines {
		wg.Add(1)
		go func(i int, line cart.Line) {
			defer wg.Done()
			results[i] = h.gateway.CreateOrderLine(ctx, ports.CreateOrderLineRequest{
				SessionID:  cmd.SessionID(),
				ItemCode:   line.Item.StockID(),
				Quantity:   line.Count,
				ClientName: cmd.ClientName(),
				Notes:      cmd.Notes(),
			})
		}(i, line)
	}

	wg.Wait()

	var failed []FailedLine
	for i, err := range results {
		if err != nil {
			failed = append(failed, FailedLine{ItemCode: lines[i].Item.StockID(), Err: err})
		}
	}

	if len(failed) > 0 {
		return &PartialBatchError{Failed: failed, Total: len(lines)}
	}

	return nil
}
