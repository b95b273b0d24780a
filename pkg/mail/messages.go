package mail

import "fmt"

func ConfirmationMessage(to string, username string, link string) Message {
	return Message{
		To:      to,
		Subject: "My Whiskies: confirm your registration",
		Body: fmt.Sprintf("Hello %s,\n\nThanks for registering with My Whiskies. "+
			"Confirm your email address by opening this link:\n\n%s\n\n"+
			"If you did not register you can ignore this message.\n", username, link),
	}
}

func ResetMessage(to string, username string, link string) Message {
	return Message{
		To:      to,
		Subject: "My Whiskies: reset your password",
		Body: fmt.Sprintf("Hello %s,\n\nA password reset was requested for your account. "+
			"Choose a new password here:\n\n%s\n\n"+
			"If you did not ask for this you can ignore this message.\n", username, link),
	}
}
