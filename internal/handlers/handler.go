package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"flyergen/internal/flyer"
	"flyergen/internal/prompt"
	"flyergen/internal/ratelimit"
	"flyergen/internal/session"
	"flyergen/internal/telegram"
	"flyergen/internal/textgroup"
)

const packageFileName = "flyer-prompt.json"

// Sender is the part of the Telegram client the handler talks to.
type Sender interface {
	SendText(chatID int64, text string) error
	SendDocument(chatID int64, name string, data []byte, caption string) error
	SendTyping(chatID int64)
	DownloadFile(ctx context.Context, fileID string, maxBytes int64) ([]byte, error)
}

type Options struct {
	Telegram      Sender
	Sessions      *session.Store
	Limiter       *ratelimit.Registry
	Logger        *slog.Logger
	MaxPhotoBytes int64
}

type Handler struct {
	tg            Sender
	sessions      *session.Store
	limiter       *ratelimit.Registry
	logger        *slog.Logger
	aggregator    *textgroup.Aggregator
	maxPhotoBytes int64
}

func New(opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sessions := opts.Sessions
	if sessions == nil {
		sessions = session.NewStore(session.Options{})
	}
	maxPhotoBytes := opts.MaxPhotoBytes
	if maxPhotoBytes <= 0 {
		maxPhotoBytes = 10 << 20
	}

	return &Handler{
		tg:            opts.Telegram,
		sessions:      sessions,
		limiter:       opts.Limiter,
		logger:        logger,
		maxPhotoBytes: maxPhotoBytes,
	}
}

// SetTextGroupAggregator routes pasted JSON through ag so that descriptions
// Telegram split into several messages are compiled once, whole.
func (h *Handler) SetTextGroupAggregator(ag *textgroup.Aggregator) {
	h.aggregator = ag
}

// Commands is the menu published to Telegram on startup.
func Commands() []telegram.Command {
	return []telegram.Command{
		{Name: "start", Description: "What this bot does"},
		{Name: "help", Description: "How to describe a flyer"},
		{Name: "example", Description: "A flyer description to start from"},
		{Name: "categories", Description: "Categories, styles and moods"},
		{Name: "flyer", Description: "Compile a flyer description"},
		{Name: "refine", Description: "Adjust the last prompt"},
		{Name: "notext", Description: "Remove all text from the last prompt"},
		{Name: "prompt", Description: "Show the last prompt again"},
		{Name: "negative", Description: "Show the last negative prompt"},
		{Name: "clear", Description: "Forget the last flyer"},
	}
}

func (h *Handler) HandleUpdate(ctx context.Context, update telegram.Update) error {
	if update.Message == nil || update.Message.Chat == nil {
		return nil
	}

	msg := update.Message
	chatID := msg.Chat.ID
	var userID int64
	var username, languageCode string
	if msg.From != nil {
		userID = msg.From.ID
		username = msg.From.UserName
		languageCode = msg.From.LanguageCode
	}

	if msg.IsCommand() {
		return h.handleCommand(ctx, chatID, username, languageCode, msg)
	}

	if len(msg.Photo) > 0 {
		return h.handlePhoto(ctx, chatID, username, languageCode, msg)
	}

	if msg.Text != "" {
		return h.handleText(ctx, chatID, userID, username, languageCode, msg.Text)
	}

	return nil
}

// HandleTextGroup compiles a description that arrived in several messages.
func (h *Handler) HandleTextGroup(ctx context.Context, group textgroup.Group) {
	if err := h.compile(ctx, group.ChatID, group.Username, group.LanguageCode, group.Text(), ""); err != nil {
		h.logger.Error("text group processing failed", "chat_id", group.ChatID, "err", err)
	}
}

func (h *Handler) handleCommand(ctx context.Context, chatID int64, username, languageCode string, msg *tgbotapi.Message) error {
	args := strings.TrimSpace(msg.CommandArguments())

	switch msg.Command() {
	case "start":
		return h.tg.SendText(chatID,
			"Flyer prompt bot\n\n"+
				"Send me a flyer description as JSON and I will turn it into a prompt for an image model.\n\n"+
				"/example - a description to start from\n"+
				"/help - all commands",
		)
	case "help":
		return h.tg.SendText(chatID, helpText)
	case "example":
		return h.tg.SendText(chatID, exampleConfiguration)
	case "categories":
		return h.tg.SendText(chatID, categoriesText())
	case "flyer":
		if args == "" {
			return h.tg.SendText(chatID, "Send the description after the command, for example:\n/flyer {\"category\":\"event\",\"textContent\":{\"headline\":\"Summer Fest\"}}")
		}
		return h.compile(ctx, chatID, username, languageCode, args, "")
	case "refine":
		if args == "" {
			return h.tg.SendText(chatID, "Tell me what to change, for example:\n/refine make it brighter and bigger text")
		}
		return h.refine(chatID, args)
	case "notext":
		return h.removeText(chatID)
	case "prompt":
		sess, ok := h.sessions.Get(chatID)
		if !ok {
			return h.tg.SendText(chatID, noFlyerText)
		}
		return h.tg.SendText(chatID, sess.Package.MainPrompt)
	case "negative":
		sess, ok := h.sessions.Get(chatID)
		if !ok {
			return h.tg.SendText(chatID, noFlyerText)
		}
		return h.tg.SendText(chatID, sess.Package.NegativePrompt)
	case "clear":
		h.sessions.Clear(chatID)
		return h.tg.SendText(chatID, "Done. The last flyer is forgotten.")
	default:
		return h.tg.SendText(chatID, "Unknown command. Use /help.")
	}
}

func (h *Handler) handleText(ctx context.Context, chatID, userID int64, username, languageCode, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if looksLikeConfiguration(text) {
		if h.aggregator != nil {
			h.aggregator.Add(textgroup.Item{
				ChatID:       chatID,
				UserID:       userID,
				Username:     username,
				LanguageCode: languageCode,
				Text:         text,
			})
			return nil
		}
		return h.compile(ctx, chatID, username, languageCode, text, "")
	}

	if _, ok := h.sessions.Get(chatID); !ok {
		return h.tg.SendText(chatID, "Send a flyer description as JSON to get started. /example shows one.")
	}
	if looksLikeNoTextRequest(text) {
		return h.removeText(chatID)
	}
	return h.refine(chatID, text)
}

// handlePhoto compiles the JSON caption with the photo as reference imagery.
func (h *Handler) handlePhoto(ctx context.Context, chatID int64, username, languageCode string, msg *tgbotapi.Message) error {
	caption := strings.TrimSpace(msg.Caption)
	if !looksLikeConfiguration(caption) {
		return h.tg.SendText(chatID, "Add the flyer description as JSON in the photo caption and I will build the flyer around the photo.")
	}
	photo := msg.Photo[len(msg.Photo)-1]
	return h.compile(ctx, chatID, username, languageCode, caption, photo.FileID)
}

// compile parses text, attaches the photo when photoFileID is set, and
// replies with the compiled package. The photo is only downloaded once the
// description is known to be valid.
func (h *Handler) compile(ctx context.Context, chatID int64, username, languageCode, text, photoFileID string) error {
	if !h.allow(chatID) {
		return h.tg.SendText(chatID, rateLimitedText)
	}

	cfg, err := parseConfiguration(text)
	if err != nil {
		h.logger.Info("flyer description rejected", "chat_id", chatID, "err", err)
		return h.tg.SendText(chatID, describeError(err))
	}
	if cfg.Language == "" && languageCode != "" {
		cfg.Language = flyer.ParseLanguage(languageCode)
	}

	h.tg.SendTyping(chatID)

	if photoFileID != "" {
		data, err := h.tg.DownloadFile(ctx, photoFileID, h.maxPhotoBytes)
		if err != nil {
			h.logger.Error("photo download failed", "chat_id", chatID, "err", err)
			if errors.Is(err, telegram.ErrFileTooLarge) {
				return h.tg.SendText(chatID, fmt.Sprintf("The photo is too large. Please send one under %d MB.", h.maxPhotoBytes>>20))
			}
			return h.tg.SendText(chatID, "Could not download the photo. Please try again.")
		}
		if ref := flyer.NewReference(data, ""); ref != nil {
			cfg.Reference = ref
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	pkg := prompt.Build(cfg)
	h.sessions.Start(chatID, username, cfg, pkg)

	h.logger.Info("flyer compiled",
		"chat_id", chatID,
		"category", string(cfg.Category),
		"language", string(cfg.WithDefaults().Language),
		"photo", photoFileID != "",
		"prompt_len", len(pkg.MainPrompt),
	)
	return h.sendPackage(chatID, "Your flyer prompt is ready.", pkg)
}

func (h *Handler) refine(chatID int64, feedback string) error {
	if !h.allow(chatID) {
		return h.tg.SendText(chatID, rateLimitedText)
	}

	sess, err := h.sessions.Refine(chatID, feedback, func(p string) string {
		return prompt.ApplyFeedback(p, feedback)
	})
	if errors.Is(err, session.ErrNoFlyer) {
		return h.tg.SendText(chatID, noFlyerText)
	}
	if err != nil {
		return err
	}

	matched := prompt.MatchFeedback(feedback)
	h.logger.Info("flyer refined", "chat_id", chatID, "matched", len(matched), "refinements", len(sess.Refinements))

	title := "Prompt updated with your request."
	if len(matched) > 0 {
		title = "Prompt updated: " + strings.Join(matched, ", ") + "."
	}
	return h.sendPackage(chatID, title, sess.Package)
}

func (h *Handler) removeText(chatID int64) error {
	if !h.allow(chatID) {
		return h.tg.SendText(chatID, rateLimitedText)
	}

	sess, err := h.sessions.Refine(chatID, "remove all text", prompt.BuildNoTextRefinement)
	if errors.Is(err, session.ErrNoFlyer) {
		return h.tg.SendText(chatID, noFlyerText)
	}
	if err != nil {
		return err
	}
	h.logger.Info("flyer text removed", "chat_id", chatID)
	return h.sendPackage(chatID, "Prompt updated: all text removed.", sess.Package)
}

func (h *Handler) sendPackage(chatID int64, title string, pkg flyer.PromptPackage) error {
	summary := fmt.Sprintf("%s\nAspect ratio %s (model ratio %s), model %s, quality %s.",
		title,
		pkg.AspectRatio,
		flyer.AspectRatio(pkg.AspectRatio).ModelRatio(),
		pkg.Model,
		pkg.Quality,
	)
	if err := h.tg.SendText(chatID, summary+"\n\n"+pkg.MainPrompt); err != nil {
		return err
	}

	data, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return err
	}
	return h.tg.SendDocument(chatID, packageFileName, data, "Prompt package with the negative prompt")
}

func (h *Handler) allow(chatID int64) bool {
	if h.limiter == nil {
		return true
	}
	return h.limiter.Allow("chat:" + strconv.FormatInt(chatID, 10))
}

func describeError(err error) string {
	switch {
	case errors.Is(err, flyer.ErrMissingHeadline):
		return "The description needs a headline: set textContent.headline."
	case errors.Is(err, flyer.ErrInvalidConfiguration):
		return "I could not read that description. Check that it is valid JSON; /example shows the format."
	default:
		return "Something went wrong. Please try again."
	}
}

func categoriesText() string {
	var b strings.Builder
	b.WriteString("Categories and the text fields they use:\n")
	for _, c := range flyer.Categories() {
		fmt.Fprintf(&b, "• %s (%s): %s\n", c.DisplayName(), c, strings.Join(c.TextFields(), ", "))
	}
	b.WriteString("\nStyles: ")
	b.WriteString(joinKeys(flyer.VisualStyles()))
	b.WriteString("\nMoods: ")
	b.WriteString(joinKeys(flyer.Moods()))
	b.WriteString("\nColor presets: ")
	b.WriteString(joinKeys(flyer.ColorPresets()))
	b.WriteString("\nAspect ratios: ")
	b.WriteString(joinKeys(flyer.AspectRatios()))
	b.WriteString("\nLanguages: ")
	b.WriteString(joinKeys(flyer.Languages()))
	return b.String()
}

func joinKeys[T ~string](values []T) string {
	keys := make([]string, 0, len(values))
	for _, v := range values {
		keys = append(keys, string(v))
	}
	return strings.Join(keys, ", ")
}

const (
	noFlyerText     = "There is no flyer yet. Send a description first; /example shows one."
	rateLimitedText = "Too many requests. Please wait a moment and try again."

	helpText = "How it works\n\n" +
		"1. Send a flyer description as JSON (or /flyer <json>).\n" +
		"2. Send a photo with the JSON as caption to build the flyer around it.\n" +
		"3. Reply with plain text to adjust the prompt, e.g. \"more vibrant, bigger text\".\n\n" +
		"/example - a description to start from\n" +
		"/categories - accepted values\n" +
		"/refine <feedback> - adjust the last prompt\n" +
		"/notext - remove all text from the last prompt\n" +
		"/prompt - show the last prompt\n" +
		"/negative - show the last negative prompt\n" +
		"/clear - forget the last flyer"

	exampleConfiguration = `{
  "category": "event",
  "language": "en",
  "textContent": {
    "headline": "Summer Music Fest",
    "subheadline": "Three stages, one weekend",
    "date": "July 12",
    "time": "6 PM",
    "venueName": "Riverside Park",
    "address": "120 River Street",
    "ctaText": "Get tickets now"
  },
  "colorSettings": {"preset": "warm", "backgroundType": "gradient"},
  "visualSettings": {"style": "bold_vibrant", "mood": "exciting", "textProminence": "dominant", "imageryType": "illustrated"},
  "outputSettings": {"aspectRatio": "4:5"},
  "targetAudience": "young adults"
}`
)
