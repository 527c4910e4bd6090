package progress

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/arbolin/internal/rules"
)

// ErrInsufficientFunds is returned by Buy when the active currency does not
// cover the price.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Buy spends the currency of modes on one power-up for the next session.
func Buy(prev Progress, id rules.PowerUp, modes rules.Modes) (Progress, error) {
	info, err := rules.LookupPowerUp(id)
	if err != nil {
		return prev, fmt.Errorf("progress: buy: %w", err)
	}

	cur := modes.Currency()
	if have := prev.Balance(cur); have < info.Cost {
		return prev, fmt.Errorf("progress: buy %s: need %d %s, have %d: %w",
			id, info.Cost, cur, have, ErrInsufficientFunds)
	}

	p := prev.Normalize()
	p.addCurrency(cur, -info.Cost)
	return p, nil
}
