// Package binance сверяет ожидающие депозиты с историей пополнений Binance и подтверждает совпавшие.
package binance

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/fsdevblog/uc-store/internal/transport/binance/client"
	"github.com/sirupsen/logrus"
)

const (
	DefaultInterval = time.Minute

	defaultServiceTimeout = 5 * time.Second
	defaultAPITimeout     = 10 * time.Second
)

// Verifier периодически сверяет депозиты. Реализует service.VerificationScheduler.
type Verifier struct {
	client   Client
	deposits Depositor
	creds    CredentialsProvider
	l        *logrus.Entry
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
}

// New создает верификатор. Интервал по умолчанию DefaultInterval.
func New(c Client, deposits Depositor, creds CredentialsProvider, l *logrus.Logger) *Verifier {
	return &Verifier{
		client:   c,
		deposits: deposits,
		creds:    creds,
		l: l.WithFields(logrus.Fields{
			"component": "binance",
			"module":    "verifier",
		}),
		interval: DefaultInterval,
	}
}

// WithInterval устанавливает период между проходами. Непозитивные значения игнорируются.
func (v *Verifier) WithInterval(interval time.Duration) *Verifier {
	if interval > 0 {
		v.interval = interval
	}
	return v
}

// Start запускает цикл проверки: первый проход сразу, далее раз в интервал. Повторный вызов на
// запущенном верификаторе ничего не делает. Отмена ctx цикл не останавливает, для этого есть Stop.
func (v *Verifier) Start(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cancel != nil {
		return
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	v.cancel = cancel

	go v.run(loopCtx)
}

// Stop останавливает планирование новых проходов. Уже начатый проход доживает до конца.
func (v *Verifier) Stop() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cancel == nil {
		return
	}
	v.cancel()
	v.cancel = nil
}

func (v *Verifier) IsRunning() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cancel != nil
}

func (v *Verifier) run(ctx context.Context) {
	v.l.WithField("interval", v.interval.String()).Info("Starting")

	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()

	for {
		// проход не зависит от остановки цикла, время ограничено таймаутами вызовов.
		v.pass(context.WithoutCancel(ctx))

		select {
		case <-ctx.Done():
			v.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
		}
	}
}

func (v *Verifier) pass(ctx context.Context) {
	approved, err := v.runPass(ctx)
	if err != nil {
		v.l.WithError(err).Error("verification pass skipped")
		return
	}
	if approved > 0 {
		v.l.WithField("approved", approved).Info("verification pass done")
	}
}

// runPass выполняет один проход сверки и возвращает количество подтвержденных депозитов.
// Ошибка провайдера прерывает проход целиком, состояние депозитов не меняется.
func (v *Verifier) runPass(ctx context.Context) (int, error) {
	svcCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	creds, credsErr := v.creds.Credentials(svcCtx)
	cancel()
	if credsErr != nil {
		if errors.Is(credsErr, domain.ErrAutoVerifyDisabled) || errors.Is(credsErr, domain.ErrCredentialsMissing) {
			v.l.WithError(credsErr).Debug("auto verification is not configured")
			return 0, nil
		}
		return 0, fmt.Errorf("load credentials: %w", credsErr)
	}

	svcCtx, cancel = context.WithTimeout(ctx, defaultServiceTimeout)
	pending, pendingErr := v.deposits.Pending(svcCtx)
	cancel()
	if pendingErr != nil {
		return 0, fmt.Errorf("list pending deposits: %w", pendingErr)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	apiCtx, apiCancel := context.WithTimeout(ctx, defaultAPITimeout)
	history, historyErr := v.client.DepositHistory(apiCtx, creds)
	apiCancel()
	if historyErr != nil {
		return 0, fmt.Errorf("fetch deposit history: %w", historyErr)
	}

	confirmed := confirmedByTxID(history)

	var approved int
	for _, deposit := range pending {
		l := v.l.WithFields(logrus.Fields{
			"depositID": deposit.ID,
			"txID":      deposit.TransactionID,
		})

		remote, ok := confirmed[deposit.TransactionID]
		if !ok {
			continue
		}
		if remote.Amount.LessThan(deposit.Amount) {
			l.WithFields(logrus.Fields{
				"claimed":  deposit.Amount.String(),
				"received": remote.Amount.String(),
			}).Warn("received amount is less than claimed")
			continue
		}

		svcCtx, cancel = context.WithTimeout(ctx, defaultServiceTimeout)
		_, approveErr := v.deposits.ApproveVerified(svcCtx, deposit.ID)
		cancel()
		if approveErr != nil {
			if errors.Is(approveErr, domain.ErrInvalidDepositState) {
				// депозит уже обработан вручную.
				l.Debug("deposit already processed")
				continue
			}
			l.WithError(approveErr).Error("approve verified deposit")
			continue
		}
		l.Info("deposit auto-approved")
		approved++
	}
	return approved, nil
}

// confirmedByTxID индекс зачисленных провайдером депозитов. При повторе txId берется наибольшая сумма.
func confirmedByTxID(history []domain.ProviderDeposit) map[string]domain.ProviderDeposit {
	confirmed := make(map[string]domain.ProviderDeposit, len(history))
	for _, h := range history {
		if h.Status != client.DepositStatusSuccess || h.TxID == "" {
			continue
		}
		if prev, ok := confirmed[h.TxID]; ok && prev.Amount.GreaterThanOrEqual(h.Amount) {
			continue
		}
		confirmed[h.TxID] = h
	}
	return confirmed
}
