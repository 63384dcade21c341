package bot

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"todo-planner/internal/config"
	"todo-planner/internal/model"
	"todo-planner/internal/repository"
	"todo-planner/internal/service"
)

const (
	menuLabelTodo      = "📋 To-do"
	menuLabelDuplicate = "🔁 Duplicates"
	menuLabelHistory   = "🕘 History"
)

// telegramCommands maps Telegram command names, which may not contain
// dashes, to to-do commands.
var telegramCommands = map[string]string{
	"add":            "add",
	"addlist":        "add-list",
	"assign":         "assign",
	"tag":            "tag",
	"toggle":         "toggle",
	"changedate":     "change-date",
	"changepriority": "change-priority",
	"delete":         "delete",
	"restore":        "restore",
	"show":           "show",
	"todo":           "todo",
	"find":           "find",
	"taggedwith":     "tagged-with",
	"upcoming":       "upcoming",
	"before":         "before",
	"between":        "between",
	"duplicate":      "duplicate",
}

// Bot aggregates Telegram API with services.
type Bot struct {
	api        *tgbotapi.BotAPI
	userRepo   *repository.UserRepository
	commandSvc *service.CommandService
	digestSvc  *service.DigestService
	config     *config.Config
}

func New(token string, userRepo *repository.UserRepository, commandSvc *service.CommandService, digestSvc *service.DigestService, cfg *config.Config) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("[info] bot authorized on account %s", api.Self.UserName)

	return &Bot{
		api:        api,
		userRepo:   userRepo,
		commandSvc: commandSvc,
		digestSvc:  digestSvc,
		config:     cfg,
	}, nil
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	log.Println("[info] start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.Message == nil || update.Message.Chat == nil || !update.Message.Chat.IsPrivate() {
			continue
		}
		if err := b.handleMessage(ctx, update.Message); err != nil {
			log.Printf("handle message: %v", err)
		}
	}

	return ctx.Err()
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}

	if !msg.IsCommand() {
		if name, ok := menuAlias(msg.Text); ok {
			return b.runTodoCommand(ctx, msg, name, nil)
		}
		if strings.TrimSpace(strings.ToLower(msg.Text)) == strings.ToLower(menuLabelHistory) {
			return b.handleHistory(ctx, msg)
		}
		return b.sendText(msg.Chat.ID, "I only understand commands. Send /help for the list.")
	}

	log.Printf("[info] command from %d: /%s %s", msg.From.ID, msg.Command(), msg.CommandArguments())
	return b.handleCommand(ctx, msg)
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	if name, ok := telegramCommands[strings.ToLower(msg.Command())]; ok {
		return b.runTodoCommand(ctx, msg, name, strings.Fields(msg.CommandArguments()))
	}

	switch msg.Command() {
	case "start":
		return b.handleStart(ctx, msg)
	case "help":
		return b.sendText(msg.Chat.ID, helpText())
	case "history":
		return b.handleHistory(ctx, msg)
	case "new":
		id := b.commandSvc.NewSession(msg.Chat.ID)
		log.Printf("[info] new session chat=%d session=%s", msg.Chat.ID, id)
		return b.sendText(msg.Chat.ID, "🆕 Started an empty to-do session.")
	case "digest":
		return b.handleDigest(ctx, msg)
	default:
		return b.sendText(msg.Chat.ID, "Error, invalid command!")
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	if _, err := b.ensureUser(ctx, msg.From); err != nil {
		return err
	}

	name := strings.TrimSpace(msg.From.FirstName)
	if name == "" {
		name = "there"
	}
	return b.sendText(msg.Chat.ID, fmt.Sprintf("👋 Hi, %s!\n<b>I keep your to-do tree.</b>\n\n%s", escape(name), helpText()))
}

func (b *Bot) runTodoCommand(ctx context.Context, msg *tgbotapi.Message, name string, args []string) error {
	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}

	lines, err := b.commandSvc.Execute(ctx, user, msg.Chat.ID, name, args)
	if err != nil {
		log.Printf("journal %s for user=%d: %v", name, user.ID, err)
	}
	if len(lines) == 0 {
		log.Printf("[info] %s produced no output user=%d", name, user.ID)
		return nil
	}
	return b.sendText(msg.Chat.ID, formatLines(lines))
}

func (b *Bot) handleHistory(ctx context.Context, msg *tgbotapi.Message) error {
	limit := 10
	if b.config != nil && b.config.HistoryLimit > 0 {
		limit = b.config.HistoryLimit
	}
	entries, err := b.commandSvc.History(ctx, msg.Chat.ID, limit)
	if err != nil {
		return b.sendText(msg.Chat.ID, fmt.Sprintf("Could not load history: %s", escape(err.Error())))
	}
	if len(entries) == 0 {
		return b.sendText(msg.Chat.ID, "No commands in this session yet.")
	}
	return b.sendText(msg.Chat.ID, formatHistory(entries))
}

func (b *Bot) handleDigest(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.ensureUser(ctx, msg.From)
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(msg.CommandArguments())) {
	case "on":
		if err := b.userRepo.SetDigest(ctx, user.ID, true); err != nil {
			return err
		}
		return b.sendText(msg.Chat.ID, "Digest enabled.")
	case "off":
		if err := b.userRepo.SetDigest(ctx, user.ID, false); err != nil {
			return err
		}
		return b.sendText(msg.Chat.ID, "Digest disabled.")
	case "":
		text, ok := b.digestSvc.Digest(msg.Chat.ID, time.Now())
		if !ok {
			return b.sendText(msg.Chat.ID, "Nothing overdue or due in the next 7 days.")
		}
		return b.sendText(msg.Chat.ID, text)
	default:
		return b.sendText(msg.Chat.ID, "Error, invalid command!")
	}
}

// SendDigests sends the deadline digest to every subscribed user that has
// a live session with something due.
func (b *Bot) SendDigests(ctx context.Context) error {
	users, err := b.userRepo.ListDigestRecipients(ctx)
	if err != nil {
		return err
	}
	now := time.Now()
	for _, user := range users {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		text, ok := b.digestSvc.Digest(user.TelegramID, now)
		if !ok {
			continue
		}
		if err := b.sendText(user.TelegramID, text); err != nil {
			log.Printf("send digest to %d: %v", user.TelegramID, err)
		}
	}
	return nil
}

func (b *Bot) ensureUser(ctx context.Context, from *tgbotapi.User) (*model.User, error) {
	return b.userRepo.UpsertFromTelegram(ctx, from.ID, from.FirstName, from.LastName, from.UserName)
}

func (b *Bot) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = mainMenuKeyboard()
	_, err := b.api.Send(msg)
	return err
}

func menuAlias(text string) (string, bool) {
	switch strings.TrimSpace(strings.ToLower(text)) {
	case strings.ToLower(menuLabelTodo):
		return "todo", true
	case strings.ToLower(menuLabelDuplicate):
		return "duplicate", true
	default:
		return "", false
	}
}

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelTodo),
			tgbotapi.NewKeyboardButton(menuLabelDuplicate),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelHistory),
			tgbotapi.NewKeyboardButton("/help"),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = false
	return kb
}

func escape(s string) string {
	return html.EscapeString(s)
}
