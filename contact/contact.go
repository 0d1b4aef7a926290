package contact

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/smtp"

	"folio/config"
	"folio/logger"
	"folio/utils"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SendEmail relays a contact-form submission to the configured receiver.
// Nothing is persisted; a relay failure is surfaced to the caller.
func SendEmail(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input message
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Name == "" || input.Email == "" || input.Subject == "" || input.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name, email, subject and message are required")
		return
	}

	if err := relay(input); err != nil {
		logger.Log.Error("contact mail relay failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Email sent successfully"})
}

func relay(m message) error {
	cfg := config.Load()
	if cfg.SMTPHost == "" || cfg.ContactReceiver == "" {
		return fmt.Errorf("mail relay not configured")
	}

	body := []byte(fmt.Sprintf(
		"Subject: [Portfolio] %s\r\nReply-To: %s\r\n\r\nFrom: %s <%s>\r\n\r\n%s",
		m.Subject, m.Email, m.Name, m.Email, m.Message,
	))

	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	addr := cfg.SMTPHost + ":" + cfg.SMTPPort
	return smtp.SendMail(addr, auth, cfg.SMTPUser, []string{cfg.ContactReceiver}, body)
}
