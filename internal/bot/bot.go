// Package bot wires the Telegram command surface to the ledger,
// market data, watchlist, alert, and advisor components.
package bot

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/tradeai/stockbot/internal/advisor"
	"github.com/tradeai/stockbot/internal/alert"
	"github.com/tradeai/stockbot/internal/domain"
	"github.com/tradeai/stockbot/internal/ledger"
	"github.com/tradeai/stockbot/internal/market"
	"github.com/tradeai/stockbot/internal/render"
	"github.com/tradeai/stockbot/internal/watchlist"
)

// telegramAPI is the slice of the Telegram client the bot uses.
// *tgbotapi.BotAPI satisfies it; tests stub it out.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Deps carries the collaborators the bot dispatches commands to.
type Deps struct {
	Registry  *ledger.Registry
	Market    market.Provider
	Watchlist *watchlist.Store
	Alerts    *alert.Store
	Advisor   *advisor.Advisor
	Logger    *slog.Logger
	Version   string
}

// Bot polls Telegram for updates and replies to commands. It also
// implements alert.Notifier so the monitor can push triggered alerts.
type Bot struct {
	api       telegramAPI
	registry  *ledger.Registry
	market    market.Provider
	watchlist *watchlist.Store
	alerts    *alert.Store
	advisor   *advisor.Advisor
	logger    *slog.Logger
	version   string
	startedAt time.Time
	handled   atomic.Int64
}

// New connects to Telegram with the given token and wires the bot.
func New(token string, deps Deps) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	deps.Logger.Info("authorized on telegram", slog.String("account", api.Self.UserName))
	return newWithAPI(api, deps), nil
}

func newWithAPI(api telegramAPI, deps Deps) *Bot {
	return &Bot{
		api:       api,
		registry:  deps.Registry,
		market:    deps.Market,
		watchlist: deps.Watchlist,
		alerts:    deps.Alerts,
		advisor:   deps.Advisor,
		logger:    deps.Logger,
		version:   deps.Version,
		startedAt: time.Now().UTC(),
	}
}

// Run polls for updates until ctx is canceled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("bot started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("bot stopped")
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, upd)
		}
	}
}

// Handled returns the number of updates processed since startup.
func (b *Bot) Handled() int64 {
	return b.handled.Load()
}

func (b *Bot) handleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message == nil || upd.Message.From == nil {
		return
	}
	msg := upd.Message

	start := time.Now()
	logger := b.logger.With(
		slog.String("update_id", uuid.NewString()),
		slog.Int64("user_id", msg.From.ID),
		slog.String("command", msg.Command()),
	)

	reply := b.route(ctx, msg)
	b.handled.Add(1)

	if reply == "" {
		return
	}

	out := tgbotapi.NewMessage(msg.Chat.ID, reply)
	out.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(out); err != nil {
		logger.Error("sending reply", slog.String("error", err.Error()))
		return
	}

	logger.Info("update handled", slog.Duration("duration", time.Since(start)))
}

// route dispatches one message to its handler and returns the reply
// text. Non-command text goes to the advisor chat path.
func (b *Bot) route(ctx context.Context, msg *tgbotapi.Message) string {
	userID := msg.From.ID
	args := splitArgs(msg.CommandArguments())

	switch msg.Command() {
	case "start":
		return render.Welcome()
	case "help":
		return render.Help()
	case "price":
		return b.cmdPrice(ctx, args)
	case "market":
		return b.cmdMarket(ctx)
	case "trending":
		return b.cmdTrending(ctx)
	case "analyze":
		return b.cmdAnalyze(ctx, args)
	case "chat":
		return b.advisor.Chat(msg.CommandArguments())
	case "watchlist":
		return b.cmdWatchlist(ctx, userID, args)
	case "trade":
		return b.cmdTrade(userID, args)
	case "portfolio":
		return b.cmdPortfolio(ctx, userID)
	case "trades":
		return b.cmdTrades(userID)
	case "alert":
		return b.cmdAlert(userID, args)
	case "alerts":
		return render.AlertList(b.alerts.ListByUser(userID))
	case "status":
		return b.cmdStatus()
	case "":
		// Plain text: chat with the advisor, as if /chat was used.
		return b.advisor.Chat(msg.Text)
	default:
		return render.Fallback()
	}
}

// AlertTriggered pushes a triggered-alert notification to its owner.
// It satisfies alert.Notifier.
func (b *Bot) AlertTriggered(a domain.Alert, q *domain.Quote) {
	out := tgbotapi.NewMessage(a.UserID, render.AlertTriggered(a, q))
	out.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(out); err != nil {
		b.logger.Error("sending alert notification",
			slog.Int64("user_id", a.UserID),
			slog.Int64("alert_id", a.ID),
			slog.String("error", err.Error()),
		)
	}
}
