package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	db "cashflow-server/src/db/sql"
	"cashflow-server/src/util"
)

const resetMessage = "If an account with that email exists, a password reset email has been sent."

func newResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// RequestPasswordReset issues a single-use reset token. The response is the
// same whether or not the email matches an account.
func RequestPasswordReset(store db.Store, tokenTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode password reset request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		req.Email = strings.TrimSpace(req.Email)
		if req.Email == "" {
			http.Error(w, "email is required", http.StatusBadRequest)
			return
		}

		user, err := store.GetUserByEmail(r.Context(), strings.ToLower(req.Email))
		if err == nil {
			token, tokenErr := newResetToken()
			if tokenErr != nil {
				log.Printf("ERROR: Failed to generate reset token for user %d: %v", user.ID, tokenErr)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if err := store.CreateResetToken(r.Context(), user.ID, token, time.Now().Add(tokenTTL)); err != nil {
				log.Printf("ERROR: Failed to store reset token for user %d: %v", user.ID, err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			// TODO: deliver the token by email once an SMTP sender is configured.
			log.Printf("INFO: Password reset token issued for user %d", user.ID)
		} else {
			log.Printf("INFO: Password reset requested for unknown email")
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": resetMessage})
	}
}

// UpdatePassword sets a new password for the account matching the email.
// The caller must prove ownership with either a live reset token or the old
// password.
func UpdatePassword(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email       string `json:"email"`
			NewPassword string `json:"new_password"`
			OldPassword string `json:"old_password"`
			ResetToken  string `json:"reset_token"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode password update request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		req.Email = strings.TrimSpace(req.Email)
		if req.Email == "" || req.NewPassword == "" {
			http.Error(w, "email and new_password are required", http.StatusBadRequest)
			return
		}

		user, err := store.GetUserByEmail(r.Context(), strings.ToLower(req.Email))
		if err != nil {
			log.Printf("ERROR: Password update requested for unknown email")
			http.Error(w, "user with this email does not exist", http.StatusNotFound)
			return
		}

		switch {
		case req.ResetToken != "":
			tokenUserID, err := store.ConsumeResetToken(r.Context(), req.ResetToken)
			if err != nil || tokenUserID != user.ID {
				log.Printf("ERROR: Invalid reset token for user %d", user.ID)
				http.Error(w, "invalid or expired reset token", http.StatusBadRequest)
				return
			}
		case req.OldPassword != "":
			if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.OldPassword)); err != nil {
				log.Printf("ERROR: Invalid old password attempt for user %d", user.ID)
				http.Error(w, "old password is incorrect", http.StatusBadRequest)
				return
			}
		default:
			http.Error(w, "old_password or reset_token is required", http.StatusBadRequest)
			return
		}

		if !util.ValidatePassword(req.NewPassword) {
			log.Printf("ERROR: Password validation failed during password update - User: %d", user.ID)
			http.Error(w, "password must be at least 8 characters with uppercase, lowercase, digit, and special character", http.StatusBadRequest)
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("ERROR: Failed to hash new password for user %d: %v", user.ID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if err := store.UpdateUserPassword(r.Context(), user.ID, string(hashedPassword)); err != nil {
			log.Printf("ERROR: Failed to update password - user_id: %d: %v", user.ID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Password updated - User: %d", user.ID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "password updated successfully"})
	}
}
