package utils

import (
	"fmt"
	"log"

	"film_library/config"

	"gopkg.in/gomail.v2"
)

// SendNewFilmEmail notifies the configured recipients that a film was added.
// Runs async so the response is never delayed; delivery failure is logged
// and never surfaced to the caller.
func SendNewFilmEmail(cfg *config.Config, title string) {
	recipients := cfg.ReceiverEmails
	go func() {
		if len(recipients) == 0 {
			return
		}

		d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
		for _, to := range recipients {
			m := gomail.NewMessage()
			m.SetHeader("From", cfg.SMTPFrom)
			m.SetHeader("To", to)
			m.SetHeader("Subject", "Greetings from FilmLibrary!")
			m.SetBody("text/plain", fmt.Sprintf("A new film was added to FilmLibrary: %s", title))

			if err := d.DialAndSend(m); err != nil {
				log.Printf("failed to send new film email to %s: %v", to, err)
			}
		}
	}()
}
