package bot

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tradeai/stockbot/internal/domain"
)

// splitArgs breaks the command-arguments string into fields.
func splitArgs(s string) []string {
	return strings.Fields(s)
}

// tradeRequest is a parsed /trade command.
type tradeRequest struct {
	Action   domain.Action
	Symbol   string
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

// parseTrade parses `/trade [buy|sell] SYMBOL QUANTITY PRICE`
// arguments. It reports false on any shape or number error; the
// ledger does the semantic validation.
func parseTrade(args []string) (tradeRequest, bool) {
	if len(args) != 4 {
		return tradeRequest{}, false
	}

	action, ok := domain.ParseAction(args[0])
	if !ok {
		return tradeRequest{}, false
	}

	qty, err := decimal.NewFromString(args[2])
	if err != nil {
		return tradeRequest{}, false
	}
	price, err := decimal.NewFromString(args[3])
	if err != nil {
		return tradeRequest{}, false
	}

	return tradeRequest{
		Action:   action,
		Symbol:   domain.NormalizeSymbol(args[1]),
		Quantity: qty,
		Price:    price,
	}, true
}

// alertRequest is a parsed /alert command.
type alertRequest struct {
	Symbol    string
	Condition domain.AlertCondition
	Target    decimal.Decimal
}

// parseAlert parses `/alert SYMBOL [above|below] PRICE` arguments.
func parseAlert(args []string) (alertRequest, bool) {
	if len(args) != 3 {
		return alertRequest{}, false
	}

	condition, ok := domain.ParseAlertCondition(args[1])
	if !ok {
		return alertRequest{}, false
	}

	target, err := decimal.NewFromString(args[2])
	if err != nil {
		return alertRequest{}, false
	}

	return alertRequest{
		Symbol:    domain.NormalizeSymbol(args[0]),
		Condition: condition,
		Target:    target,
	}, true
}
