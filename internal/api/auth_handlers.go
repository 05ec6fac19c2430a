package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/ferrous/regiment/internal/error_values"
	"github.com/ferrous/regiment/internal/service"
	"github.com/ferrous/regiment/pkg/httputil"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteCrudError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("registering error: existed user")
			httputil.WriteCrudError(w, http.StatusConflict, "user with such email already exists", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("registering error: invalid credentials format")
			httputil.WriteCrudError(w, http.StatusBadRequest, "invalid email or password format", err.Error())
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			httputil.WriteCrudError(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	httputil.WriteCrudSuccess(w, http.StatusCreated, "verification code sent", map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Verify(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req VerifyRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("verification error: invalid body")
		httputil.WriteCrudError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.userService.Verify(ctx, &service.VerifyRequest{
		Email: req.Email,
		Code:  req.Code,
		Token: req.Token,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("verification error: unexist user")
			httputil.WriteCrudError(w, http.StatusNotFound, "user with such email doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrVerificationExpired):
			logger.Error("verification error: code expired, account removed")
			httputil.WriteCrudError(w, http.StatusGone, "verification code expired, register again", nil)
		case errors.Is(err, errorvalues.ErrInvalidVerification):
			logger.Error("verification error: wrong code or token")
			httputil.WriteCrudError(w, http.StatusForbidden, "wrong verification code or token", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("verification error: invalid fields")
			httputil.WriteCrudError(w, http.StatusBadRequest, "invalid verification fields", err.Error())
		default:
			logger.Error("verification error: service error", slog.String("error", err.Error()))
			httputil.WriteCrudError(w, http.StatusInternalServerError, "internal error during verification", nil)
		}
		return
	}
	httputil.WriteCrudSuccess(w, http.StatusOK, "account verified", nil)
	logger.Info("successful verification")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteCrudError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteCrudError(w, http.StatusNotFound, "user with such email doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrUserNotVerified):
			logger.Error("login error: unverified user")
			httputil.WriteCrudError(w, http.StatusForbidden, "account is not verified", nil)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteCrudError(w, http.StatusForbidden, "invalid email or password", nil)
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteCrudError(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteCrudError(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteCrudSuccess(w, http.StatusOK, "logged in", map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) CleanupUnverified(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	removed, err := s.userService.CleanupUnverified(ctx)
	if err != nil {
		logger.Error("cleanup error: service error", slog.String("error", err.Error()))
		httputil.WriteCrudError(w, http.StatusInternalServerError, "internal error during cleanup", nil)
		return
	}
	httputil.WriteCrudSuccess(w, http.StatusOK, "cleanup finished", map[string]any{
		"removed": removed,
	})
	logger.Info("unverified users cleanup finished", slog.Int64("removed", removed))
}
