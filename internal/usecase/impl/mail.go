package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sagedo/internal/domain/entity"
	"sagedo/internal/domain/service"
)

const mailSendTimeout = 30 * time.Second

// sendMailAsync delivers a notification in the background. Delivery is
// best-effort: failures are logged and never reach the request that
// triggered them.
func sendMailAsync(logger *slog.Logger, mailer service.Mailer, mail service.Mail) {
	if mailer == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mailSendTimeout)
		defer cancel()

		if err := mailer.Send(ctx, mail); err != nil {
			logger.Warn("Failed to send notification email",
				slog.String("to", mail.To),
				slog.String("subject", mail.Subject),
				slog.Any("error", err))
		}
	}()
}

func verificationMail(to, name, token string) service.Mail {
	return service.Mail{
		To:      to,
		Subject: "Verify your SAGE DO email",
		HTMLBody: fmt.Sprintf(
			"<p>Hi %s,</p><p>Welcome to SAGE DO! Please verify your email by opening the link below:</p>"+
				"<p><a href=\"/api/auth/verify?token=%s\">Verify email</a></p>",
			name, token),
	}
}

func passwordResetMail(to, name, token string) service.Mail {
	return service.Mail{
		To:      to,
		Subject: "Reset your SAGE DO password",
		HTMLBody: fmt.Sprintf(
			"<p>Hi %s,</p><p>We received a request to reset your password. The link below is valid for one hour:</p>"+
				"<p><a href=\"/reset-password?token=%s\">Reset password</a></p>"+
				"<p>If you didn't ask for this, you can ignore this email.</p>",
			name, token),
	}
}

func goodbyeMail(to, name string) service.Mail {
	return service.Mail{
		To:      to,
		Subject: "Your SAGE DO account has been deleted",
		HTMLBody: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your account and token balance have been removed. "+
				"We're sorry to see you go - you're welcome back any time.</p>",
			name),
	}
}

func orderConfirmationMail(order *entity.Order) service.Mail {
	return service.Mail{
		To:      order.CustomerEmail,
		Subject: fmt.Sprintf("Order received: %s", order.ServiceName),
		HTMLBody: fmt.Sprintf(
			"<p>Hi %s,</p><p>We've received your order for <b>%s</b> and it is now in our queue. "+
				"You'll hear from us as work progresses.</p><p>Order reference: %s</p>",
			order.CustomerName, order.ServiceName, order.ID),
	}
}

func paymentReceivedMail(order *entity.Order) service.Mail {
	return service.Mail{
		To:      order.CustomerEmail,
		Subject: fmt.Sprintf("Payment received for %s", order.ServiceName),
		HTMLBody: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your payment for <b>%s</b> has been confirmed and the order is now being processed.</p>"+
				"<p>Order reference: %s</p>",
			order.CustomerName, order.ServiceName, order.ID),
	}
}

func orderDeliveredMail(order *entity.Order) service.Mail {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your order for <b>%s</b> has been delivered.</p>",
		order.CustomerName, order.ServiceName)

	if order.DeliveryPreference == entity.DeliveryEmail && len(order.DeliveryFileURLs) > 0 {
		body += "<p>Your files:</p><ul>"
		for _, url := range order.DeliveryFileURLs {
			body += fmt.Sprintf("<li><a href=%q>%s</a></li>", url, url)
		}
		body += "</ul>"
	} else {
		body += "<p>You can download your files from your dashboard.</p>"
	}

	if order.DeliveryNotes != "" {
		body += fmt.Sprintf("<p>Notes from the team: %s</p>", order.DeliveryNotes)
	}

	return service.Mail{
		To:       order.CustomerEmail,
		Subject:  fmt.Sprintf("Your order is ready: %s", order.ServiceName),
		HTMLBody: body,
	}
}
