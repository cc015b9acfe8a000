package repo

import (
	"github.com/rollsgame/casino/internal/pg"
	accountrepo "github.com/rollsgame/casino/internal/repo/account-repo"
	ledgerrepo "github.com/rollsgame/casino/internal/repo/ledger-repo"
	oddsrepo "github.com/rollsgame/casino/internal/repo/odds-repo"
	paymentrepo "github.com/rollsgame/casino/internal/repo/payment-repo"
	rewardrepo "github.com/rollsgame/casino/internal/repo/reward-repo"
	wagerrepo "github.com/rollsgame/casino/internal/repo/wager-repo"
)

type Repositories struct {
	Account *accountrepo.Repository
	Ledger  *ledgerrepo.Repository
	Wager   *wagerrepo.Repository
	Payment *paymentrepo.Repository
	Reward  *rewardrepo.Repository
	Odds    *oddsrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		Account: accountrepo.New(conn, txManager),
		Ledger:  ledgerrepo.New(conn),
		Wager:   wagerrepo.New(conn),
		Payment: paymentrepo.New(conn),
		Reward:  rewardrepo.New(conn),
		Odds:    oddsrepo.New(conn),
	}
}
