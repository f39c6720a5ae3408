package mail

import (
	"bytes"
	"strings"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// emailContent is the body of one transactional email.
type emailContent struct {
	FirstName  string
	Paragraphs []string
	ButtonText string
	ButtonURL  string
	Closing    string
}

func welcomeContent(firstName, confirmURL string) emailContent {
	return emailContent{
		FirstName: firstName,
		Paragraphs: []string{
			"Welcome to Natours, we're glad to have you 🎉🙏",
			"We're all a big family here, so make sure to upload your user photo so we get to know you a bit better!",
			"Please confirm your account before your first booking.",
		},
		ButtonText: "Confirm your account",
		ButtonURL:  confirmURL,
		Closing:    "If you need any help with booking your next tour, please don't hesitate to contact me!",
	}
}

func passwordResetContent(firstName, resetURL string) emailContent {
	return emailContent{
		FirstName: firstName,
		Paragraphs: []string{
			"Forgot your password? Submit a PATCH request with your new password and passwordConfirm to the link below.",
		},
		ButtonText: "Reset your password",
		ButtonURL:  resetURL,
		Closing:    "If you didn't forget your password, please ignore this email!",
	}
}

func bookingContent(firstName, tourName, ticketURL string) emailContent {
	return emailContent{
		FirstName: firstName,
		Paragraphs: []string{
			"Thank you for booking " + tourName + "!",
			"Your payment went through. Show the QR ticket below to your guide on the first day of the tour.",
		},
		ButtonText: "Get your ticket",
		ButtonURL:  ticketURL,
		Closing:    "We can't wait to see you on tour!",
	}
}

func emailPage(subject string, c emailContent) Node {
	paragraphs := make([]Node, 0, len(c.Paragraphs))
	for _, p := range c.Paragraphs {
		paragraphs = append(paragraphs, P(Text(p)))
	}

	return HTML(
		Head(
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
			Meta(Attr("http-equiv", "Content-Type"), Content("text/html; charset=UTF-8")),
			TitleEl(Text(subject)),
		),
		Body(
			Table(Class("body"), Attr("role", "presentation"),
				Tr(Td(Div(Class("container"),
					P(Text("Hi "+c.FirstName+",")),
					Group(paragraphs),
					Table(Class("btn btn-primary"), Attr("role", "presentation"),
						Tr(Td(A(Href(c.ButtonURL), Target("_blank"), Text(c.ButtonText)))),
					),
					P(Text(c.Closing)),
					P(Text("- Jonas Schmedtmann, CEO")),
				))),
			),
		),
	)
}

// renderHTML renders the HTML body of an email.
func renderHTML(subject string, c emailContent) (string, error) {
	var buf bytes.Buffer
	if err := emailPage(subject, c).Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// renderText renders the plain-text alternative of an email.
func renderText(c emailContent) string {
	var b strings.Builder
	b.WriteString("Hi " + c.FirstName + ",\n\n")
	for _, p := range c.Paragraphs {
		b.WriteString(p + "\n\n")
	}
	b.WriteString(c.ButtonText + ": " + c.ButtonURL + "\n\n")
	b.WriteString(c.Closing + "\n\n- Jonas Schmedtmann, CEO\n")

	return b.String()
}
