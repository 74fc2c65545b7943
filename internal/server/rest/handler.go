package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/moneyboy/internal/common"
	"github.com/dmitrijs2005/moneyboy/internal/server/models"
	"github.com/dmitrijs2005/moneyboy/internal/server/services"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokensResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type registerRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

type userResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`
}

type paymentRequest struct {
	Amount       float64  `json:"amount"`
	Description  string   `json:"description"`
	Participants []string `json:"participants"`
}

// paymentResponse carries the date as a string of epoch milliseconds, the
// way the hosted API does.
type paymentResponse struct {
	ID           string   `json:"id"`
	Amount       float64  `json:"amount"`
	Description  string   `json:"description"`
	Participants []string `json:"participants"`
	CreatedBy    string   `json:"createdBy"`
	Date         string   `json:"date"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(v)
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Username: u.UserName, DisplayName: u.DisplayName, Email: u.Email}
}

func toPaymentResponse(p *models.Payment) paymentResponse {
	participants := p.Participants
	if participants == nil {
		participants = []string{}
	}
	return paymentResponse{
		ID:           p.ID,
		Amount:       p.Amount,
		Description:  p.Description,
		Participants: participants,
		CreatedBy:    p.CreatedBy,
		Date:         strconv.FormatInt(p.Date.UnixMilli(), 10),
	}
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed request")
		return
	}

	tokens, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeMessage(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info(r.Context(), "Logged in", "username", req.Username)
	writeJSON(w, http.StatusCreated, tokensResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken})
}

func (s *HTTPServer) refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeBody(w, r, &req); err != nil || req.RefreshToken == "" {
		writeMessage(w, http.StatusUnauthorized, "missing refresh token")
		return
	}

	access, err := s.users.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrRefreshTokenExpired):
			writeMessage(w, http.StatusUnauthorized, err.Error())
		default:
			s.logger.Error(r.Context(), "refresh failed", "error", err)
			writeMessage(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, tokensResponse{AccessToken: access})
}

func (s *HTTPServer) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.logger.Info(r.Context(), "Registration request", "username", req.Username)

	u, err := s.users.Register(r.Context(), services.Registration{
		UserName:    req.Username,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Email:       req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			writeMessage(w, http.StatusConflict, publicMessage(err))
		case errors.Is(err, common.ErrorValidation):
			writeMessage(w, http.StatusBadRequest, publicMessage(err))
		default:
			s.logger.Error(r.Context(), err.Error())
			writeMessage(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", u.UserName, "id", u.ID)
	writeJSON(w, http.StatusAccepted, map[string]string{"id": u.ID})
}

func (s *HTTPServer) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Logout(r.Context(), userIDFromContext(r.Context())); err != nil {
		s.logger.Error(r.Context(), "logout failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) profile(w http.ResponseWriter, r *http.Request) {
	u, err := s.users.Profile(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		// the token outlived the account
		if errors.Is(err, common.ErrorNotFound) {
			writeMessage(w, http.StatusUnauthorized, "unknown user")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

func (s *HTTPServer) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]userResponse, 0, len(users))
	for i := range users {
		u := toUserResponse(&users[i])
		u.Email = ""
		out = append(out, u)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *HTTPServer) createPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "malformed request")
		return
	}

	p, err := s.payments.Create(r.Context(), userIDFromContext(r.Context()), services.NewPayment{
		Amount:       req.Amount,
		Description:  req.Description,
		Participants: req.Participants,
	})
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeMessage(w, http.StatusBadRequest, publicMessage(err))
			return
		}
		s.logger.Error(r.Context(), "create payment failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toPaymentResponse(p))
}

func (s *HTTPServer) listPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := s.payments.List(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]paymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, toPaymentResponse(&payments[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// publicMessage keeps the last segment of a wrapped error, e.g.
// "username already exists" out of "error creating user: username already exists".
func publicMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
