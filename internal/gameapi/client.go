package gameapi

import (
	"bytes"
	"casino-backend/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
)

const loginPath = "/web-root/restricted/player/login.aspx"

const (
	PortfolioSportsBook   = "SportsBook"
	PortfolioSeamlessGame = "SeamlessGame"
)

var ErrLoginFailed = errors.New("game login failed")

var mobileUserAgent = regexp.MustCompile(`(?i)android|webos|iphone|ipad|ipod|blackberry|iemobile|opera mini|mobile`)

type loginRequest struct {
	CompanyKey  string `json:"CompanyKey"`
	ServerID    string `json:"ServerId"`
	Username    string `json:"Username"`
	Portfolio   string `json:"Portfolio"`
	IsWapSports bool   `json:"IsWapSports"`
}

type loginResponse struct {
	URL   string `json:"url"`
	Error struct {
		ID  int    `json:"id"`
		Msg string `json:"msg"`
	} `json:"error"`
}

// Client forwards player logins to the upstream game provider.
type Client struct {
	baseURL    string
	companyKey string
	serverID   string
	locale     string
	httpClient *http.Client
}

func NewClient(cfg config.GameAPIConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		companyKey: cfg.CompanyKey,
		serverID:   cfg.ServerID,
		locale:     cfg.Locale,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Login returns the launch URL for a game. One attempt, bounded by the client timeout.
func (c *Client) Login(ctx context.Context, username string, gpid int, isSports bool, userAgent string) (string, error) {
	if c.baseURL == "" {
		return "", fmt.Errorf("%w: game api url not configured", ErrLoginFailed)
	}

	portfolio := PortfolioSeamlessGame
	if isSports {
		portfolio = PortfolioSportsBook
	}

	payload, err := json.Marshal(loginRequest{
		CompanyKey:  c.companyKey,
		ServerID:    c.serverID,
		Username:    username,
		Portfolio:   portfolio,
		IsWapSports: false,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("%w: status %d: %s", ErrLoginFailed, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrLoginFailed, err)
	}
	if out.Error.ID != 0 {
		return "", fmt.Errorf("%w: provider error %d: %s", ErrLoginFailed, out.Error.ID, out.Error.Msg)
	}
	if out.URL == "" {
		return "", fmt.Errorf("%w: empty url", ErrLoginFailed)
	}

	return BuildGameURL(out.URL, gpid, DeviceFromUserAgent(userAgent), c.locale), nil
}

// BuildGameURL turns the provider's (usually protocol-relative) url into a launch link.
func BuildGameURL(raw string, gpid int, device, locale string) string {
	u := raw
	if strings.HasPrefix(u, "//") {
		u = "https:" + u
	}
	sep := "&"
	if !strings.Contains(u, "?") {
		sep = "?"
	}
	if locale == "" {
		locale = "vi-vn"
	}
	return fmt.Sprintf("%s%sgpid=%d&gameid=0&device=%s&lang=%s", u, sep, gpid, device, locale)
}

// DeviceFromUserAgent returns "m" for mobile browsers and "d" otherwise.
func DeviceFromUserAgent(userAgent string) string {
	if mobileUserAgent.MatchString(userAgent) {
		return "m"
	}
	return "d"
}
