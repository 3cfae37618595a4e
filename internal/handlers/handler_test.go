package handlers

import (
	"context"
	"strings"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flyergen/internal/flyer"
	"flyergen/internal/prompt"
	"flyergen/internal/ratelimit"
	"flyergen/internal/session"
	"flyergen/internal/telegram"
	"flyergen/internal/textgroup"
)

type sentDocument struct {
	name    string
	data    []byte
	caption string
}

type fakeSender struct {
	mu        sync.Mutex
	texts     []string
	documents []sentDocument
	typing    int
	photo     []byte
	photoErr  error
	downloads []string
}

func (f *fakeSender) SendText(_ int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, text)
	return nil
}

func (f *fakeSender) SendDocument(_ int64, name string, data []byte, caption string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.documents = append(f.documents, sentDocument{name: name, data: data, caption: caption})
	return nil
}

func (f *fakeSender) SendTyping(int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.typing++
}

func (f *fakeSender) DownloadFile(_ context.Context, fileID string, _ int64) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.downloads = append(f.downloads, fileID)
	return f.photo, f.photoErr
}

func (f *fakeSender) lastText() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.texts) == 0 {
		return ""
	}
	return f.texts[len(f.texts)-1]
}

const chatID int64 = 42

const eventJSON = `{"category":"event","textContent":{"headline":"Summer Fest","date":"July 12"},"visualSettings":{"style":"bold_vibrant"}}`

func newTestHandler(t *testing.T, opts Options) (*Handler, *fakeSender) {
	t.Helper()
	sender := &fakeSender{}
	opts.Telegram = sender
	if opts.Sessions == nil {
		opts.Sessions = session.NewStore(session.Options{})
	}
	return New(opts), sender
}

func textUpdate(text string) telegram.Update {
	return telegram.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: chatID},
		From: &tgbotapi.User{ID: 7, UserName: "ana"},
		Text: text,
	}}
}

func commandUpdate(text string) telegram.Update {
	u := textUpdate(text)
	name, _, _ := strings.Cut(text, " ")
	u.Message.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(name)}}
	return u
}

func photoUpdate(caption string) telegram.Update {
	return telegram.Update{Message: &tgbotapi.Message{
		Chat:    &tgbotapi.Chat{ID: chatID},
		From:    &tgbotapi.User{ID: 7, UserName: "ana"},
		Caption: caption,
		Photo: []tgbotapi.PhotoSize{
			{FileID: "small", Width: 90, Height: 90},
			{FileID: "large", Width: 1280, Height: 1280},
		},
	}}
}

func textgroupFor(parts ...string) textgroup.Group {
	return textgroup.Group{ChatID: chatID, UserID: 7, Username: "ana", LanguageCode: "zh-hans", Parts: parts}
}

func TestHandleUpdate_Start(t *testing.T) {
	h, sender := newTestHandler(t, Options{})

	require.NoError(t, h.HandleUpdate(context.Background(), commandUpdate("/start")))
	assert.Contains(t, sender.lastText(), "Flyer prompt bot")
}

func TestHandleUpdate_UnknownCommand(t *testing.T) {
	h, sender := newTestHandler(t, Options{})

	require.NoError(t, h.HandleUpdate(context.Background(), commandUpdate("/banana")))
	assert.Contains(t, sender.lastText(), "Unknown command")
}

func TestHandleUpdate_CompilesPastedJSON(t *testing.T) {
	sessions := session.NewStore(session.Options{})
	h, sender := newTestHandler(t, Options{Sessions: sessions})

	require.NoError(t, h.HandleUpdate(context.Background(), textUpdate(eventJSON)))

	sess, ok := sessions.Get(chatID)
	require.True(t, ok)
	assert.Equal(t, "ana", sess.Username)

	cfg, err := flyer.DecodeConfiguration([]byte(eventJSON))
	require.NoError(t, err)
	want := prompt.Build(cfg)
	assert.Equal(t, want, sess.Package)

	assert.Contains(t, sender.lastText(), "Your flyer prompt is ready.")
	assert.Contains(t, sender.lastText(), want.MainPrompt)
	assert.Contains(t, sender.lastText(), "model ratio 3:4")
	require.Len(t, sender.documents, 1)
	assert.Equal(t, packageFileName, sender.documents[0].name)
	assert.Contains(t, string(sender.documents[0].data), `"negativePrompt"`)
}

func TestHandleUpdate_FlyerCommand(t *testing.T) {
	sessions := session.NewStore(session.Options{})
	h, sender := newTestHandler(t, Options{Sessions: sessions})

	require.NoError(t, h.HandleUpdate(context.Background(), commandUpdate("/flyer")))
	assert.Contains(t, sender.lastText(), "Send the description after the command")

	require.NoError(t, h.HandleUpdate(context.Background(), commandUpdate("/flyer "+eventJSON)))
	_, ok := sessions.Get(chatID)
	assert.True(t, ok)
}

func TestHandleUpdate_CodeFencedJSON(t *testing.T) {
	sessions := session.NewStore(session.Options{})
	h, _ := newTestHandler(t, Options{Sessions: sessions})

	require.NoError(t, h.HandleUpdate(context.Background(), textUpdate("```json\n"+eventJSON+"\n```")))
	sess, ok := sessions.Get(chatID)
	require.True(t, ok)
	assert.Equal(t, flyer.CategoryEvent, sess.Config.Category)
}

func TestHandleUpdate_RejectsBadDescriptions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "missing headline", text: `{"category":"event","textContent":{"headline":"  "}}`, want: "needs a headline"},
		{name: "malformed json", text: `{"category":`, want: "valid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := session.NewStore(session.Options{})
			h, sender := newTestHandler(t, Options{Sessions: sessions})

			require.NoError(t, h.HandleUpdate(context.Background(), textUpdate(tt.text)))
			assert.Contains(t, sender.lastText(), tt.want)
			assert.Equal(t, 0, sessions.Len())
		})
	}
}

func TestHandleUpdate_TelegramLanguageFallback(t *testing.T) {
	sessions := session.NewStore(session.Options{})
	h, _ := newTestHandler(t, Options{Sessions: sessions})

	u := textUpdate(eventJSON)
	u.Message.From.LanguageCode = "es"
	require.NoError(t, h.HandleUpdate(context.Background(), u))

	sess, ok := sessions.Get(chatID)
	require.True(t, ok)
	assert.Equal(t, flyer.LanguageSpanish, sess.Config.Language)
	assert.Contains(t, sess.Package.MainPrompt, flyer.LanguageSpanish.PromptInstruction())
}

func TestHandleUpdate_ExplicitLanguageWins(t *testing.T) {
	sessions := session.NewStore(session.Options{})
	h, _ := newTestHandler(t, Options{Sessions: sessions})

	u := textUpdate(`{"category":"event","language":"ar","textContent":{"headline":"Eid"}}`)
	u.Message.From.LanguageCode = "es"
	require.NoError(t, h.HandleUpdate(context.Background(), u))

	sess, ok := sessions.Get(chatID)
	require.True(t, ok)
	assert.Equal(t, flyer.LanguageArabic, sess.Config.Language)
}

func TestHandleUpdate_FeedbackWithoutFlyer(t *testing.T) {
	h, sender := newTestHandler(t, Options{})

	require.NoError(t, h.HandleUpdate(context.Background(), textUpdate("make it brighter")))
	assert.Contains(t, sender.lastText(), "to get started")

	require.NoError(t, h.HandleUpdate(context.Background(), commandUpdate("/refine brighter")))
	assert.Equal(t, noFlyerText, sender.lastText())

	require.NoError(t, h.HandleUpdate(context.Background(), commandUpdate("/notext")))
	assert.Equal(t, noFlyerText, sender.lastText())

	require.NoError(t, h.HandleUpdate(context.Background(), commandUpdate("/negative")))
	assert.Equal(t, noFlyerText, sender.lastText())
}

func TestHandleUpdate_RefinesLastPrompt(t *testing.T) {
	sessions := session.NewStore(session.Options{})
	h, sender := newTestHandler(t, Options{Sessions: sessions})
	ctx := context.Background()

	require.NoError(t, h.HandleUpdate(ctx, textUpdate(eventJSON)))
	before, _ := sessions.Get(chatID)

	require.NoError(t, h.HandleUpdate(ctx, textUpdate("make it brighter")))

	after, ok := sessions.Get(chatID)
	require.True(t, ok)
	assert.Equal(t, prompt.ApplyFeedback(before.Package.MainPrompt, "make it brighter"), after.Package.MainPrompt)
	assert.Equal(t, before.Package.NegativePrompt, after.Package.NegativePrompt)
	assert.Equal(t, []string{"make it brighter"}, after.Refinements)
	assert.Contains(t, sender.lastText(), "Prompt updated: ")

	require.NoError(t, h.HandleUpdate(ctx, commandUpdate("/refine add sparkles")))
	again, _ := sessions.Get(chatID)
	assert.Equal(t, prompt.ApplyFeedback(after.Package.MainPrompt, "add sparkles"), again.Package.MainPrompt)
	assert.Len(t, again.Refinements, 2)
}

func TestHandleUpdate_UnmatchedFeedbackIsQuoted(t *testing.T) {
	sessions := session.NewStore(session.Options{})
	h, sender := newTestHandler(t, Options{Sessions: sessions})
	ctx := context.Background()

	require.NoError(t, h.HandleUpdate(ctx, textUpdate(eventJSON)))
	require.NoError(t, h.HandleUpdate(ctx, textUpdate("add a dragon")))

	sess, _ := sessions.Get(chatID)
	assert.True(t, strings.HasSuffix(sess.Package.MainPrompt, "IMPORTANT CHANGES REQUESTED: add a dragon"))
	assert.Contains(t, sender.lastText(), "Prompt updated with your request.")
}

func TestHandleUpdate_RemoveText(t *testing.T) {
	for _, update := range []telegram.Update{commandUpdate("/notext"), textUpdate("please remove the text")} {
		sessions := session.NewStore(session.Options{})
		h, _ := newTestHandler(t, Options{Sessions: sessions})
		ctx := context.Background()

		require.NoError(t, h.HandleUpdate(ctx, textUpdate(eventJSON)))
		before, _ := sessions.Get(chatID)

		require.NoError(t, h.HandleUpdate(ctx, update))
		after, _ := sessions.Get(chatID)
		assert.Equal(t, prompt.BuildNoTextRefinement(before.Package.MainPrompt), after.Package.MainPrompt)
	}
}

func TestHandleUpdate_PromptAndNegativeCommands(t *testing.T) {
	sessions := session.NewStore(session.Options{})
	h, sender := newTestHandler(t, Options{Sessions: sessions})
	ctx := context.Background()

	require.NoError(t, h.HandleUpdate(ctx, textUpdate(eventJSON)))
	sess, _ := sessions.Get(chatID)

	require.NoError(t, h.HandleUpdate(ctx, commandUpdate("/prompt")))
	assert.Equal(t, sess.Package.MainPrompt, sender.lastText())

	require.NoError(t, h.HandleUpdate(ctx, commandUpdate("/negative")))
	assert.Equal(t, sess.Package.NegativePrompt, sender.lastText())

	require.NoError(t, h.HandleUpdate(ctx, commandUpdate("/clear")))
	assert.Equal(t, 0, sessions.Len())
}

func TestHandleUpdate_PhotoReference(t *testing.T) {
	sessions := session.NewStore(session.Options{})
	h, sender := newTestHandler(t, Options{Sessions: sessions})
	sender.photo = []byte{0xff, 0xd8, 0xff}

	caption := `{"category":"restaurant_food","textContent":{"headline":"Taco Night"},"imageryDescription":"tacos"}`
	require.NoError(t, h.HandleUpdate(context.Background(), photoUpdate(caption)))

	assert.Equal(t, []string{"large"}, sender.downloads)
	sess, ok := sessions.Get(chatID)
	require.True(t, ok)
	assert.Equal(t, flyer.PhotoReference{Data: []byte{0xff, 0xd8, 0xff}}, sess.Config.Reference)
}

func TestHandleUpdate_PhotoWithoutDescription(t *testing.T) {
	h, sender := newTestHandler(t, Options{})

	require.NoError(t, h.HandleUpdate(context.Background(), photoUpdate("nice photo")))
	assert.Empty(t, sender.downloads)
	assert.Contains(t, sender.lastText(), "photo caption")
}

func TestHandleUpdate_PhotoInvalidDescriptionSkipsDownload(t *testing.T) {
	h, sender := newTestHandler(t, Options{})

	require.NoError(t, h.HandleUpdate(context.Background(), photoUpdate(`{"category":"event"}`)))
	assert.Empty(t, sender.downloads)
	assert.Contains(t, sender.lastText(), "needs a headline")
}

func TestHandleUpdate_PhotoTooLarge(t *testing.T) {
	sessions := session.NewStore(session.Options{})
	h, sender := newTestHandler(t, Options{Sessions: sessions, MaxPhotoBytes: 2 << 20})
	sender.photoErr = telegram.ErrFileTooLarge

	require.NoError(t, h.HandleUpdate(context.Background(), photoUpdate(eventJSON)))
	assert.Contains(t, sender.lastText(), "under 2 MB")
	assert.Equal(t, 0, sessions.Len())
}

func TestHandleUpdate_RateLimited(t *testing.T) {
	limiter := ratelimit.New(ratelimit.Options{PerMinute: 1, Burst: 1})
	h, sender := newTestHandler(t, Options{Limiter: limiter})
	ctx := context.Background()

	require.NoError(t, h.HandleUpdate(ctx, textUpdate(eventJSON)))
	assert.NotEqual(t, rateLimitedText, sender.lastText())

	require.NoError(t, h.HandleUpdate(ctx, textUpdate(eventJSON)))
	assert.Equal(t, rateLimitedText, sender.lastText())
}

func TestHandleUpdate_IgnoresEmptyUpdates(t *testing.T) {
	h, sender := newTestHandler(t, Options{})

	require.NoError(t, h.HandleUpdate(context.Background(), telegram.Update{}))
	require.NoError(t, h.HandleUpdate(context.Background(), textUpdate("   ")))
	assert.Empty(t, sender.texts)
}

func TestHandleTextGroup(t *testing.T) {
	sessions := session.NewStore(session.Options{})
	h, _ := newTestHandler(t, Options{Sessions: sessions})

	h.HandleTextGroup(context.Background(), textgroupFor(`{"category":"event","textContent":`, `{"headline":"Split"}}`))

	sess, ok := sessions.Get(chatID)
	require.True(t, ok)
	assert.Equal(t, "Split", sess.Config.Text.Headline)
	assert.Equal(t, flyer.LanguageChinese, sess.Config.Language)
}

func TestCategoriesText(t *testing.T) {
	text := categoriesText()
	assert.Contains(t, text, "Event (event): ")
	assert.Contains(t, text, "bold_vibrant")
	assert.Contains(t, text, "en, es, ur, ar, zh")
}

func TestExampleConfigurationCompiles(t *testing.T) {
	cfg, err := parseConfiguration(exampleConfiguration)
	require.NoError(t, err)
	assert.Equal(t, flyer.CategoryEvent, cfg.Category)
	assert.NotEmpty(t, prompt.BuildMainPrompt(cfg))
}
