package kandinsky

import (
	"adboard/config"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	defaultBaseURL = "https://api-key.fusionbrain.ai/"

	// 单条 prompt 最大长度（字符）
	maxPromptLen = 500

	statusDone = "DONE"
	statusFail = "FAIL"
)

var (
	// ErrAttemptsExhausted 轮询次数用尽，生成结果仍未就绪
	ErrAttemptsExhausted = errors.New("generation not ready: poll attempts exhausted")

	// ErrGenerationFailed 服务端明确返回生成失败
	ErrGenerationFailed = errors.New("generation failed")
)

// Client 文生图 API 客户端。
// 认证使用两个静态密钥头: X-Key / X-Secret。
type Client struct {
	baseURL   string
	apiKey    string
	secretKey string
	http      *http.Client
}

func NewClient(cfg *config.KandinskyConfig) *Client {
	baseURL := cfg.URL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		baseURL:   baseURL,
		apiKey:    cfg.APIKey,
		secretKey: cfg.SecretKey,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) auth(req *http.Request) {
	req.Header.Set("X-Key", "Key "+c.apiKey)
	req.Header.Set("X-Secret", "Secret "+c.secretKey)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	c.auth(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("kandinsky: %s -> %d: %s", path, resp.StatusCode, body)
	}
	return body, nil
}

// GetModel 查询可用模型，返回第一个模型的 id
func (c *Client) GetModel(ctx context.Context) (int64, error) {
	body, err := c.get(ctx, "key/api/v1/models")
	if err != nil {
		return 0, err
	}
	id := gjson.GetBytes(body, "0.id")
	if !id.Exists() {
		return 0, fmt.Errorf("kandinsky: no models in response: %s", body)
	}
	return id.Int(), nil
}

type generateParams struct {
	Type           string `json:"type"`
	NumImages      int    `json:"numImages"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	GenerateParams struct {
		Query string `json:"query"`
	} `json:"generateParams"`
}

// Generate 提交生成任务，返回任务 uuid。
// prompt 在提交前会被清洗并截断，见 SanitizePrompt。
func (c *Client) Generate(ctx context.Context, prompt string, modelID int64) (string, error) {
	params := generateParams{
		Type:      "GENERATE",
		NumImages: 1,
		Width:     1024,
		Height:    1024,
	}
	params.GenerateParams.Query = SanitizePrompt(prompt)

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("model_id", fmt.Sprintf("%d", modelID)); err != nil {
		return "", err
	}
	// params 字段要求 application/json 类型
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="params"`)
	h.Set("Content-Type", "application/json")
	part, err := w.CreatePart(h)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(paramsJSON); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"key/api/v1/text2image/run", &buf)
	if err != nil {
		return "", err
	}
	c.auth(req)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("kandinsky: run -> %d: %s", resp.StatusCode, body)
	}

	uuid := gjson.GetBytes(body, "uuid")
	if !uuid.Exists() {
		return "", fmt.Errorf("kandinsky: no uuid in response: %s", body)
	}
	return uuid.String(), nil
}

// CheckGeneration 轮询生成状态直到 DONE，返回第一张图片的二进制数据。
// 最多轮询 attempts 次，每次间隔 delay；超出次数返回 ErrAttemptsExhausted。
func (c *Client) CheckGeneration(ctx context.Context, requestID string, attempts int, delay time.Duration) ([]byte, error) {
	for ; attempts > 0; attempts-- {
		body, err := c.get(ctx, "key/api/v1/text2image/status/"+requestID)
		if err != nil {
			return nil, err
		}

		switch gjson.GetBytes(body, "status").String() {
		case statusDone:
			img := gjson.GetBytes(body, "images.0")
			if !img.Exists() {
				return nil, fmt.Errorf("kandinsky: status DONE without images: %s", body)
			}
			data, err := base64.StdEncoding.DecodeString(img.String())
			if err != nil {
				return nil, fmt.Errorf("kandinsky: decode image: %w", err)
			}
			return data, nil
		case statusFail:
			desc := gjson.GetBytes(body, "errorDescription").String()
			if desc == "" {
				return nil, ErrGenerationFailed
			}
			return nil, fmt.Errorf("%w: %s", ErrGenerationFailed, desc)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil, ErrAttemptsExhausted
}

// SanitizePrompt 只保留可打印字符（含西里尔区间），截断到 maxPromptLen
func SanitizePrompt(s string) string {
	var b strings.Builder
	count := 0
	for _, r := range s {
		if r < 32 || r > 1103 {
			continue
		}
		b.WriteRune(r)
		count++
		if count >= maxPromptLen {
			break
		}
	}
	return b.String()
}

// SaveImage 把图片数据写入 dir/fileName。
// 首次写入失败时按备用文件名链重试，返回实际写入的完整路径。
func SaveImage(dir, fileName string, data []byte) (string, error) {
	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, data, 0o644); err == nil {
		return path, nil
	}

	fileName = fmt.Sprintf("%s%d.jpg", strings.SplitN(fileName, " ", 2)[0], time.Now().UnixNano())
	path = filepath.Join(dir, fileName)
	if err := os.WriteFile(path, data, 0o644); err == nil {
		return path, nil
	}

	path = filepath.Join(dir, fmt.Sprintf("image%d.jpg", time.Now().UnixNano()))
	err := os.WriteFile(path, data, 0o644)
	if err != nil {
		return "", err
	}
	return path, nil
}
