package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"MonthlyMasti/internal/model/dto"
)

// Client 服务端 API 的 HTTP 客户端，供 CLI 和提交流水线使用
type Client struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetAccessToken 设置后续请求携带的访问令牌
func (c *Client) SetAccessToken(token string) {
	c.accessToken = token
}

// legacyResponse /api/submit 和 /api/notify 的裸响应格式
type legacyResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Submit 提交打卡记录
func (c *Client) Submit(ctx context.Context, req dto.SubmitRequest) error {
	var resp legacyResponse
	if err := c.postJSON(ctx, "/api/submit", req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("submit rejected: %s", resp.Error)
	}
	return nil
}

// Notify 触发新提交通知
func (c *Client) Notify(ctx context.Context, name string) error {
	var resp legacyResponse
	if err := c.postJSON(ctx, "/api/notify", dto.NotifyRequest{Name: name}, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("notify rejected: %s", resp.Error)
	}
	return nil
}

// envelope /v1 和 /api/uploads 的统一响应包裹
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Upload 上传一个媒体文件，返回公网地址
func (c *Client) Upload(ctx context.Context, kind, filename string, content io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", err
	}
	if err := writer.WriteField("kind", kind); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/uploads", &body)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(httpReq)

	var resp dto.UploadResponse
	if err := c.do(httpReq, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// SignUp 邮箱注册
func (c *Client) SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.AuthTokenResponse, error) {
	var resp dto.AuthTokenResponse
	if err := c.postJSONEnvelope(ctx, "/v1/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	c.accessToken = resp.AccessToken
	return &resp, nil
}

// SignIn 邮箱登录
func (c *Client) SignIn(ctx context.Context, req dto.SignInRequest) (*dto.AuthTokenResponse, error) {
	var resp dto.AuthTokenResponse
	if err := c.postJSONEnvelope(ctx, "/v1/auth/login", req, &resp); err != nil {
		return nil, err
	}
	c.accessToken = resp.AccessToken
	return &resp, nil
}

// OAuthURL 获取第三方授权跳转地址
func (c *Client) OAuthURL(ctx context.Context, provider string) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/auth/oauth/"+provider, nil)
	if err != nil {
		return "", err
	}

	var resp dto.OAuthURLResponse
	if err := c.do(httpReq, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// Refresh 刷新令牌
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*dto.AuthTokenResponse, error) {
	var resp dto.AuthTokenResponse
	err := c.postJSONEnvelope(ctx, "/v1/auth/token/refresh", dto.RefreshTokenRequest{RefreshToken: refreshToken}, &resp)
	if err != nil {
		return nil, err
	}
	c.accessToken = resp.AccessToken
	return &resp, nil
}

// SignOut 注销
func (c *Client) SignOut(ctx context.Context) error {
	err := c.postJSONEnvelope(ctx, "/v1/auth/logout", nil, nil)
	if err != nil {
		return err
	}
	c.accessToken = ""
	return nil
}

// Me 当前登录用户
func (c *Client) Me(ctx context.Context) (*dto.AuthUserSnapshot, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/users/me", nil)
	if err != nil {
		return nil, err
	}
	c.authorize(httpReq)

	var resp dto.AuthUserSnapshot
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Dashboard 看板数据
func (c *Client) Dashboard(ctx context.Context) (*dto.DashboardData, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/dashboard", nil)
	if err != nil {
		return nil, err
	}
	c.authorize(httpReq)

	var resp dto.DashboardData
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}
}

// postJSON 发送 JSON 请求，响应直接按裸格式解析
func (c *Client) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.authorize(httpReq)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("unexpected response (status %d): %w", httpResp.StatusCode, err)
		}
	}
	return nil
}

// postJSONEnvelope 发送 JSON 请求，响应按 data/error 包裹解析
func (c *Client) postJSONEnvelope(ctx context.Context, path string, payload, out interface{}) error {
	var reader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.authorize(httpReq)

	return c.do(httpReq, out)
}

// do 执行请求并解析 data/error 包裹
func (c *Client) do(req *http.Request, out interface{}) error {
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return err
	}

	if httpResp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("unexpected response (status %d): %w", httpResp.StatusCode, err)
	}
	if env.Error != nil {
		return fmt.Errorf("%s: %s", env.Error.Code, env.Error.Message)
	}
	if httpResp.StatusCode >= 400 {
		return fmt.Errorf("request failed: status %d", httpResp.StatusCode)
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return err
		}
	}
	return nil
}
