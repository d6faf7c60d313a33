// utils/smtp.go
package utils

import (
	"net"
	"net/smtp"
	"net/textproto"
	"time"
)

// ProbeRecipient asks mxHost whether it would accept mail for email, without
// sending a message: HELO, MAIL FROM with the fixed neutral sender, RCPT TO,
// QUIT. It returns true only when the server answers RCPT with 250 (OK) or
// 251 (user not local, will forward).
//
// Every failure mode — refused connection, timeout, protocol error, an RCPT
// rejection — comes back as (false, err). Many servers deliberately block or
// fake RCPT responses to prevent enumeration, so false means "undetermined",
// never "confirmed invalid".
func (v *Verifier) ProbeRecipient(email, mxHost string) (bool, error) {
	addr := net.JoinHostPort(mxHost, v.ProbePort)

	conn, err := net.DialTimeout("tcp", addr, v.Timeout)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	// One deadline for the whole command cycle so a stalling server cannot
	// hold the request open.
	if err := conn.SetDeadline(time.Now().Add(v.Timeout)); err != nil {
		return false, err
	}

	client, err := smtp.NewClient(conn, mxHost)
	if err != nil {
		return false, err
	}
	defer client.Close()

	if err := client.Hello(v.HeloHost); err != nil {
		return false, err
	}

	// A neutral sender avoids backscatter and spam-trap flags.
	if err := client.Mail(v.From); err != nil {
		return false, err
	}

	// Client.Rcpt would accept any 25x reply, letting 252 ("cannot VRFY
	// user, but will accept message") pass for a confirmed mailbox. Issue
	// RCPT directly so only 250 and 251 count as a positive determination.
	code, msg, rcptErr := rcptCmd(client, email)

	// Close the session gracefully regardless of the RCPT outcome.
	_ = client.Quit()

	if rcptErr != nil {
		return false, rcptErr
	}
	if code != 250 && code != 251 {
		return false, &textproto.Error{Code: code, Msg: msg}
	}
	return true, nil
}

// rcptCmd sends RCPT TO and returns the reply code verbatim, without the
// reply-class validation smtp.Client.Rcpt applies.
func rcptCmd(client *smtp.Client, email string) (int, string, error) {
	id, err := client.Text.Cmd("RCPT TO:<%s>", email)
	if err != nil {
		return 0, "", err
	}
	client.Text.StartResponse(id)
	defer client.Text.EndResponse(id)
	return client.Text.ReadResponse(0)
}
