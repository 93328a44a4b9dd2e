package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/annakov/streetstore/internal/models"
	"go.uber.org/zap"
)

const defaultAPIURL = "https://api.telegram.org"

type Log interface {
	Info(string, ...zap.Field)
	Error(string, ...zap.Field)
}

// Telegram relays submitted orders to a chat through the bot sendMessage
// API. With no credentials configured it only logs the formatted message,
// which keeps local development working without a bot.
type Telegram struct {
	token  func() string
	chatID func() string
	apiURL string
	client *http.Client
	log    Log
}

func NewTelegram(token, chatID func() string, log Log) *Telegram {
	return &Telegram{
		token:  token,
		chatID: chatID,
		apiURL: defaultAPIURL,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendOrder formats and delivers the order notification. Delivery problems
// are logged but not surfaced: a lost notification must not fail the order
// submission.
func (t *Telegram) SendOrder(ctx context.Context, order models.Order) error {
	message := formatOrderMessage(order)

	token, chatID := t.token(), t.chatID()
	if token == "" || chatID == "" {
		t.log.Info("telegram credentials not configured, order notification skipped",
			zap.String("message", message))
		return nil
	}

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      message,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("encode telegram message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiURL, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		t.log.Error("failed to reach telegram api", zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		t.log.Error("telegram api error",
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(body)))
	}

	return nil
}

func formatOrderMessage(order models.Order) string {
	return fmt.Sprintf(`🛍 <b>Новый заказ!</b>

📦 <b>Товар:</b> %s
💰 <b>Цена:</b> %s ₽
📏 <b>Размер:</b> %s
👤 <b>Покупатель:</b> @%s`,
		order.ProductName, formatPrice(order.Price), order.Size, order.TelegramUsername)
}

// formatPrice renders the amount with ru-RU digit grouping, e.g. 3990 ->
// "3 990" (groups separated by non-breaking spaces, comma decimal).
func formatPrice(price float64) string {
	whole := int64(price)
	frac := price - float64(whole)

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	formatted := strings.Join(groups, "\u00a0")

	if frac > 1e-9 {
		formatted += fmt.Sprintf(",%02d", int64(math.Round(frac*100)))
	}
	return formatted
}
