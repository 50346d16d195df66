// utils/email.go
package utils

import (
	"fmt"
	"log"
	"os"

	"food-delivery/models"

	"github.com/keighl/postmark"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
}

// NewEmailService initializes and returns a new EmailService instance.
// Returns nil when POSTMARK_API_TOKEN is not set; a nil service silently
// drops all mail so the order flow never depends on it.
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		log.Println("POSTMARK_API_TOKEN not set. Email notifications disabled.")
		return nil
	}
	client := postmark.NewClient(apiToken, "")
	return &EmailService{
		client: client,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if es == nil {
		return nil
	}
	_, err := es.client.SendEmail(postmark.Email{
		From:     os.Getenv("EMAIL_SENDER"),
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendVerificationEmail sends an email verification link to the user
func (es *EmailService) SendVerificationEmail(toEmail, token string) error {
	subject := "Verify Your Email"
	verificationLink := fmt.Sprintf("http://localhost:%s/verify?token=%s", os.Getenv("PORT"), token)
	htmlContent := fmt.Sprintf(
		"<strong>Please verify your email by clicking on the following link:</strong> <a href=\"%s\">Verify Email</a>",
		verificationLink,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}

// SendOrderConfirmationEmail sends an order confirmation email to the user
func (es *EmailService) SendOrderConfirmationEmail(toEmail string, order models.Order, restaurantName string) error {
	subject := "Order Confirmation"
	htmlContent := fmt.Sprintf(
		"<strong>Dear Customer,</strong><br><br>Your order (ID: %s) from <strong>%s</strong> has been confirmed and is being prepared.<br><br>Subtotal: <strong>$%.2f</strong><br>Delivery Fee: <strong>$%.2f</strong><br>Total: <strong>$%.2f</strong><br><br>Thank you for ordering with us!",
		order.ID.Hex(),
		restaurantName,
		order.Subtotal,
		order.DeliveryFee,
		order.Total,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}
