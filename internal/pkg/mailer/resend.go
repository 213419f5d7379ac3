package mailer

import (
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// Mailer 邮件发送接口，service 层基于它做桩测试
type Mailer interface {
	SendWithRetry(ctx context.Context, to, subject, html string) (*Result, error)
}

// Result 单封邮件的发送结果
type Result struct {
	MessageID string
	Attempts  int
}

// Options 发送端配置，由 config 装配
type Options struct {
	BaseURL    string // 默认 https://api.resend.com
	APIKey     string
	From       string // 形如 Real Estate Analyzer <onboarding@resend.dev>
	MaxRetries int
	Backoff    time.Duration // 第 n 次失败后等待 Backoff * 2^(n-1)
}

type resendMailer struct {
	client  *resty.Client
	from    string
	retries int
	backoff time.Duration
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

type sendError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func New(opts Options) Mailer {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://api.resend.com"
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.Backoff <= 0 {
		opts.Backoff = 2 * time.Second
	}

	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(20 * time.Second).
		SetAuthToken(opts.APIKey).
		SetHeader("Content-Type", "application/json")

	return &resendMailer{
		client:  client,
		from:    opts.From,
		retries: opts.MaxRetries,
		backoff: opts.Backoff,
	}
}

// SendWithRetry 最多尝试 retries 次，失败后按 2 的幂指数退避。
// 返回值里的 Attempts 记录实际发出的次数，写入发送日志用。
func (m *resendMailer) SendWithRetry(ctx context.Context, to, subject, html string) (*Result, error) {
	var lastErr error

	for attempt := 1; attempt <= m.retries; attempt++ {
		log.Info("sending report email", "to", to, "attempt", attempt, "max", m.retries)

		id, err := m.send(ctx, to, subject, html)
		if err == nil {
			return &Result{MessageID: id, Attempts: attempt}, nil
		}
		lastErr = err
		log.Warn("send attempt failed", "to", to, "attempt", attempt, "err", err)

		if attempt == m.retries {
			break
		}

		wait := m.backoff << (attempt - 1)
		select {
		case <-ctx.Done():
			return &Result{Attempts: attempt}, ctx.Err()
		case <-time.After(wait):
		}
	}

	return &Result{Attempts: m.retries}, lastErr
}

func (m *resendMailer) send(ctx context.Context, to, subject, html string) (string, error) {
	var (
		okBody  sendResponse
		errBody sendError
	)

	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(sendRequest{From: m.from, To: []string{to}, Subject: subject, HTML: html}).
		SetResult(&okBody).
		SetError(&errBody).
		Post("/emails")
	if err != nil {
		return "", err
	}

	if resp.IsError() {
		if errBody.Message != "" {
			return "", fmt.Errorf("resend 返回错误: %s (%s)", errBody.Message, errBody.Name)
		}
		return "", fmt.Errorf("resend 返回状态码 %d", resp.StatusCode())
	}

	return okBody.ID, nil
}
