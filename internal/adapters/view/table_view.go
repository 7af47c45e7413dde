// Package view renders the ledger into a table model that outer layers can serve.
package view

import (
	"sync"

	"expense_tracker/internal/core/domain/client"
	"expense_tracker/internal/core/domain/repository"
	"expense_tracker/internal/logger"
	"expense_tracker/pkg/ledger"

	"github.com/shopspring/decimal"
)

// amountPlaces is the number of decimal places amounts and totals are rendered with.
const amountPlaces = 2

// TableView keeps the latest rendering of the ledger. It is safe for concurrent use.
type TableView struct {
	logger logger.AppLogger

	mu       sync.RWMutex
	snapshot ledger.Snapshot
}

// Compile-time check to ensure TableView implements client.Presenter
var _ client.Presenter = (*TableView)(nil)

// NewTableView creates an empty TableView.
func NewTableView(appLogger logger.AppLogger) *TableView {
	if appLogger == nil {
		appLogger = logger.NewDiscard()
	}
	return &TableView{
		logger:   appLogger.WithComponent("view"),
		snapshot: emptySnapshot(),
	}
}

// Update rebuilds the table from store. Any pending message is cleared.
func (v *TableView) Update(store repository.TransactionStore) {
	transactions := store.Transactions()
	matched := store.MatchedFilterIndices()

	highlighted := make(map[int]struct{}, len(matched))
	for _, idx := range matched {
		highlighted[idx] = struct{}{}
	}

	rows := make([]ledger.Row, 0, len(transactions))
	total := decimal.Zero
	for i, tx := range transactions {
		amount := decimal.NewFromFloat(tx.Amount())
		total = total.Add(amount)

		_, isHighlighted := highlighted[i]
		rows = append(rows, ledger.Row{
			Row:         i,
			ID:          tx.ID().String(),
			Amount:      amount.StringFixed(amountPlaces),
			Category:    tx.Category(),
			CreatedAt:   tx.CreatedAt(),
			Highlighted: isHighlighted,
		})
	}

	v.mu.Lock()
	v.snapshot = ledger.Snapshot{
		Rows:           rows,
		Total:          total.StringFixed(amountPlaces),
		MatchedIndices: matched,
	}
	v.mu.Unlock()

	v.logger.Debug("Table re-rendered", "rows", len(rows), "highlighted", len(matched))
}

// ShowMessage records msg so that the next Snapshot carries it.
func (v *TableView) ShowMessage(msg string) {
	v.mu.Lock()
	v.snapshot.Message = msg
	v.mu.Unlock()

	v.logger.Info("Message shown", "message", msg)
}

// Snapshot returns a copy of the latest rendering.
func (v *TableView) Snapshot() ledger.Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := v.snapshot
	out.Rows = append(make([]ledger.Row, 0, len(v.snapshot.Rows)), v.snapshot.Rows...)
	out.MatchedIndices = append(make([]int, 0, len(v.snapshot.MatchedIndices)), v.snapshot.MatchedIndices...)
	return out
}

// ClearMessage drops any pending message.
func (v *TableView) ClearMessage() {
	v.mu.Lock()
	v.snapshot.Message = ""
	v.mu.Unlock()
}

func emptySnapshot() ledger.Snapshot {
	return ledger.Snapshot{
		Rows:           []ledger.Row{},
		Total:          decimal.Zero.StringFixed(amountPlaces),
		MatchedIndices: []int{},
	}
}
