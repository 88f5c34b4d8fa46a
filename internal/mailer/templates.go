package mailer

import (
	"fmt"
	"strings"
)

// Notification templates for the certification lifecycle. Kept deliberately
// plain: the frontend owns the branded layouts.

func PaymentRequestEmail(typeName, sessionURL string) (string, string) {
	subject := "Complete your certification payment"
	html := fmt.Sprintf(`<p>Thank you for your certification request (%s).</p>
<p><a href="%s">Click here to complete your payment</a>.</p>`, typeName, sessionURL)
	return subject, html
}

func CertificateReadyEmail(certificateID, certificateURL string) (string, string) {
	subject := "Your certificate has been created"
	html := fmt.Sprintf(`<p>Your payment was confirmed and certificate %s has been created.</p>
<p><a href="%s">View your certificate</a>.</p>`, certificateID, certificateURL)
	return subject, html
}

func AccountInviteEmail(setupURL string) (string, string) {
	subject := "Activate your account"
	html := fmt.Sprintf(`<p>An account has been created for you to track your certificates.</p>
<p><a href="%s">Set your password</a> to activate it.</p>`, setupURL)
	return subject, html
}

func InauthenticItemEmail(certificateID string, suspectPoints []string, comment string) (string, string) {
	subject := "Inspection result for certificate " + certificateID
	var b strings.Builder
	fmt.Fprintf(&b, `<p>Our inspection of the item for certificate %s found it inconsistent with an authentic piece.</p>`, certificateID)
	if len(suspectPoints) > 0 {
		b.WriteString("<p>Flagged components:</p><ul>")
		for _, p := range suspectPoints {
			fmt.Fprintf(&b, "<li>%s</li>", p)
		}
		b.WriteString("</ul>")
	}
	if comment != "" {
		fmt.Fprintf(&b, "<p>Expert comment: %s</p>", comment)
	}
	return subject, b.String()
}

func CertificateCompletedEmail(certificateID, certificateURL string) (string, string) {
	subject := "Your certification is complete"
	html := fmt.Sprintf(`<p>Certificate %s has been finalized.</p>
<p><a href="%s">View your certificate</a>.</p>`, certificateID, certificateURL)
	return subject, html
}
