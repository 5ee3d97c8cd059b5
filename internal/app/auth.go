package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/budai/internal/auth"
	"github.com/abhisek/budai/internal/store"
)

// Session is returned by Register and Login.
type Session struct {
	User     *store.User   `json:"user"`
	Children []store.Child `json:"children"`
	Token    string        `json:"token"`
}

// CodeResult is returned by SendCode. Code is only set in dev mode.
type CodeResult struct {
	Sent bool   `json:"sent"`
	Code string `json:"code,omitempty"`
}

const badCredentials = "手机号或密码错误"

// SendCode issues a verification code for phone.
func (a *App) SendCode(ctx context.Context, phone string) (*CodeResult, error) {
	phone = strings.TrimSpace(phone)
	if !auth.ValidPhone(phone) {
		return nil, invalid("手机号格式不正确")
	}
	code, err := a.codes.Issue(phone)
	if err != nil {
		return nil, fmt.Errorf("issue verification code: %w", err)
	}
	a.logger.Info("verification code issued", zap.String("phone", maskPhone(phone)))

	res := &CodeResult{Sent: true}
	if a.opts.DevCodes {
		res.Code = code
	}
	return res, nil
}

// Register creates a parent account and signs it in.
func (a *App) Register(ctx context.Context, phone, password, code string) (*Session, error) {
	phone = strings.TrimSpace(phone)
	code = strings.TrimSpace(code)
	if phone == "" || password == "" || code == "" {
		return nil, invalid("请填写所有必填字段")
	}
	if !auth.ValidPhone(phone) {
		return nil, invalid("手机号格式不正确")
	}
	if !auth.ValidPassword(password) {
		return nil, invalid(fmt.Sprintf("密码长度至少%d位", auth.MinPasswordLength))
	}
	if auth.PasswordTooLong(password) {
		return nil, invalid("密码过长")
	}
	// Without verification any non-empty code is accepted.
	if a.opts.RequireVerification {
		if err := a.codes.Verify(phone, code); err != nil {
			return nil, invalid("验证码错误或已过期")
		}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u, err := a.store.Users().Create(ctx, phone, hash)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, invalid("该手机号已注册")
		}
		return nil, err
	}
	now := a.now()
	if err := a.store.Users().TouchLogin(ctx, u.ID, now); err != nil {
		return nil, err
	}
	u.LastLoginAt = &now

	token, err := a.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	a.logger.Info("user registered", zap.Stringer("user_id", u.ID))
	return &Session{User: u, Children: []store.Child{}, Token: token}, nil
}

// Login verifies credentials and returns the account with its children.
func (a *App) Login(ctx context.Context, phone, password string) (*Session, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || password == "" {
		return nil, invalid("请输入手机号和密码")
	}
	if !auth.ValidPhone(phone) {
		return nil, invalid("手机号格式不正确")
	}

	if auth.PasswordTooLong(password) {
		return nil, unauthorized(badCredentials)
	}

	u, err := a.store.Users().GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, unauthorized(badCredentials)
		}
		return nil, err
	}
	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, unauthorized(badCredentials)
		}
		return nil, err
	}

	now := a.now()
	if err := a.store.Users().TouchLogin(ctx, u.ID, now); err != nil {
		return nil, err
	}
	u.LastLoginAt = &now

	children, err := a.store.Children().ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	token, err := a.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	return &Session{User: u, Children: children, Token: token}, nil
}

func maskPhone(phone string) string {
	if len(phone) < 7 {
		return phone
	}
	return phone[:3] + "****" + phone[len(phone)-4:]
}
