package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"Takeoff/internal/advisor"
	"Takeoff/internal/config"
	"Takeoff/internal/logger"
)

type Update struct {
	UpdateID int      `json:"update_id"`
	Message  *Message `json:"message"`
}

type Message struct {
	MessageID int    `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type UpdateResponse struct {
	OK     bool     `json:"ok"`
	Result []Update `json:"result"`
}

const apiBase = "https://api.telegram.org/bot"

var client = &http.Client{Timeout: 30 * time.Second}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.BotToken == "" {
		log.Fatal("TOKEN_BOT missing")
	}
	lg := logger.New(logger.ParseLevel(cfg.LogLevel), os.Stderr)

	b := &bot{log: lg}
	if cfg.UseAdvisor() {
		gpt := advisor.NewGPTEstimator(cfg.AdvisorEndpoint, cfg.AdvisorAPIKey, lg,
			advisor.WithModel(cfg.AdvisorModel),
			advisor.WithHTTPTimeout(cfg.AdvisorTimeout),
		)
		b.est = advisor.WithRetry(gpt, cfg.AdvisorRetries, 0, cfg.AdvisorTimeout)
	}

	lg.Info("bot polling")
	offset := 0
	for ctx.Err() == nil {
		updates, err := getUpdates(ctx, cfg.BotToken, offset)
		if err != nil {
			if ctx.Err() == nil {
				lg.Warn("getUpdates: %v", err)
				sleep(ctx, 2*time.Second)
			}
			continue
		}
		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.Message == nil || u.Message.Text == "" {
				continue
			}
			text := b.reply(ctx, u.Message.Text)
			if err := sendMessage(ctx, cfg.BotToken, u.Message.Chat.ID, text); err != nil {
				lg.Warn("sendMessage to %d: %v", u.Message.Chat.ID, err)
			}
		}
	}
	lg.Info("bot stopped")
}

func sleep(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

func getUpdates(ctx context.Context, token string, offset int) ([]Update, error) {
	url := fmt.Sprintf("%s%s/getUpdates?timeout=20&offset=%d", apiBase, token, offset)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	var out UpdateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	if !out.OK {
		return nil, fmt.Errorf("telegram: %s", res.Status)
	}
	return out.Result, nil
}

func sendMessage(ctx context.Context, token string, chatID int64, text string) error {
	url := fmt.Sprintf("%s%s/sendMessage", apiBase, token)
	b, _ := json.Marshal(map[string]any{"chat_id": chatID, "text": text})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(b)))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram: %s", res.Status)
	}
	return nil
}
