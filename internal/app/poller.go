// internal/app/poller.go
package app

import (
	"context"
	"errors"
	"time"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// PollService defines the periodic check the scheduler drives.
type PollService interface {
	Poll(ctx context.Context)
}

// Poller polls the homework API, detects a status change on the most
// recent submission and notifies the configured chat. It owns the cursor
// and the two "last sent" values used to suppress duplicate messages.
type Poller struct {
	api      homework.Client
	telegram domainTelegram.Client
	chatID   int64
	logger   *logrus.Logger
	now      func() time.Time

	cursor      int64
	lastMessage string
	lastError   string
}

func NewPoller(
	api homework.Client,
	tg domainTelegram.Client,
	chatID int64,
	logger *logrus.Logger,
) *Poller {
	return &Poller{
		api:      api,
		telegram: tg,
		chatID:   chatID,
		logger:   logger,
		now:      time.Now,
	}
}

// Bootstrap establishes the initial from_date cursor before the first poll.
// It asks the API for the full history: if the newest record is already
// approved there is nothing pending and the server cursor is adopted;
// otherwise the record's own update time is used, so the pending review is
// picked up on the first real poll. Any failure falls back to "now".
func (p *Poller) Bootstrap(ctx context.Context) {
	p.cursor = p.bootstrapCursor(ctx)
	p.logger.Infof("Начальная точка отсчета: %d", p.cursor)
}

func (p *Poller) bootstrapCursor(ctx context.Context) int64 {
	resp, err := p.api.Statuses(ctx, 0)
	if err != nil {
		return p.now().Unix()
	}
	hws, err := homework.CheckResponse(resp)
	if err != nil || len(hws) == 0 {
		return p.now().Unix()
	}

	latest := hws[0]
	if latest.Status == homework.StatusApproved {
		return *resp.CurrentDate
	}
	updated, err := time.Parse(time.RFC3339, latest.DateUpdated)
	if err != nil {
		return p.now().Unix()
	}
	return updated.Unix()
}

// Poll runs a single iteration. Every failure is absorbed here: classified
// faults are logged as errors, anything else as an unexpected error, and
// either one becomes a chat alert only when its text differs from the
// previous alert. The loop itself never stops on a fault.
func (p *Poller) Poll(ctx context.Context) {
	err := p.checkOnce(ctx)
	if err == nil {
		return
	}

	var fault *homework.Fault
	var alert string
	if errors.As(err, &fault) {
		p.logger.WithError(err).Error("Сбой в работе программы")
		alert = "Сбой в работе программы: " + fault.Message
	} else {
		p.logger.WithError(err).Error("Непредвиденная ошибка")
		alert = "Сбой в работе программы: " + err.Error()
	}

	if alert != p.lastError {
		p.lastError = alert
		p.sendMessage(alert)
	}
}

func (p *Poller) checkOnce(ctx context.Context) error {
	p.logger.Info("Попытка получения ответа от АПИ")
	resp, err := p.api.Statuses(ctx, p.cursor)
	if err != nil {
		return err
	}
	p.logger.Info("Ответ от АПИ получен")

	hws, err := homework.CheckResponse(resp)
	if err != nil {
		return err
	}
	// CheckResponse guarantees CurrentDate is present.
	p.cursor = *resp.CurrentDate

	if len(hws) == 0 {
		p.logger.Debug("Нет обновлений")
		return nil
	}

	message, err := homework.StatusMessage(hws[0])
	if err != nil {
		return err
	}
	if message == p.lastMessage {
		p.logger.Debug("Статус работы не изменился")
		return nil
	}

	p.lastMessage = message
	p.sendMessage(message)
	return nil
}

// sendMessage delivers text to the configured chat. Delivery failures are
// logged and swallowed; a failed notification must never stop the poller.
func (p *Poller) sendMessage(text string) {
	p.logger.Info("Попытка отправки сообщения")
	if err := p.telegram.SendMessage(p.chatID, text); err != nil {
		p.logger.WithError(err).Error("Ошибка в работе Телеграма")
		return
	}
	p.logger.Debug("Сообщение отправлено")
}
