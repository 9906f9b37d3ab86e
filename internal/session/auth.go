package session

import (
	"strings"
	"unicode"

	"github.com/desertthunder/tunedeck/internal/catalog"
	"github.com/desertthunder/tunedeck/internal/models"
)

const (
	msgLoginOK        = "Apple ID verified"
	msgLoginFailed    = "Incorrect Apple ID or password, try again"
	msgCodeIncomplete = "Enter the full 6-digit code"
	msgCodeOK         = "Verified, signing in…"
	msgCodeFailed     = "Incorrect code, try again"
)

// Login checks an Apple ID and password after the simulated login delay.
//
// A match moves to the two-factor page with the masked ID; a mismatch leaves the login page and
// shows an error notice. Calls made while a login is in flight are ignored.
func (c *Controller) Login(id, password string) {
	if c.page != models.LoginPage || c.loginBusy {
		return
	}

	c.loginBusy = true
	c.view.SetBusy(models.LoginForm, true)
	c.logger.Debug("login submitted", "id", Mask(id))

	c.after(c.timing.Login, func() {
		user, ok := catalog.Authenticate(c.credentials, id, password)
		if !ok {
			c.logger.Info("login rejected", "id", Mask(id))
			c.loginBusy = false
			c.view.SetBusy(models.LoginForm, false)
			c.Notify(models.NoticeError, msgLoginFailed)
			return
		}

		c.logger.Info("login accepted", "id", Mask(id))
		c.pending = &user
		c.Notify(models.NoticeSuccess, msgLoginOK)

		c.after(c.timing.Settle, func() {
			c.loginBusy = false
			c.view.SetBusy(models.LoginForm, false)
			c.resetCode()
			c.showPage(models.TwoFactorPage)
			c.view.SetMaskedID(Mask(id))
		})
	})
}

// CodeInput writes a single digit into a two-factor field and advances focus.
// An empty value clears the field. Anything other than one digit is ignored.
func (c *Controller) CodeInput(field int, value string) {
	if c.page != models.TwoFactorPage || field < 0 || field >= models.CodeLength {
		return
	}

	if value == "" {
		c.code[field] = ""
		c.view.SetCode(c.code)
		c.setFocus(field)
		return
	}

	runes := []rune(value)
	digit := runes[len(runes)-1]
	if !unicode.IsDigit(digit) || digit > unicode.MaxASCII {
		return
	}

	c.code[field] = string(digit)
	c.view.SetCode(c.code)
	if field < models.CodeLength-1 {
		c.setFocus(field + 1)
	} else {
		c.setFocus(field)
	}
}

// CodeBackspace clears a field, or moves focus back when the field is already empty.
func (c *Controller) CodeBackspace(field int) {
	if c.page != models.TwoFactorPage || field < 0 || field >= models.CodeLength {
		return
	}

	if c.code[field] == "" {
		if field > 0 {
			c.setFocus(field - 1)
		}
		return
	}

	c.code[field] = ""
	c.view.SetCode(c.code)
	c.setFocus(field)
}

// VerifyCode checks the six fields after the simulated verification delay.
//
// An incomplete code is rejected at once. A correct code signs the user in and opens the main page;
// a wrong one clears the fields and refocuses the first. There is no attempt limit.
func (c *Controller) VerifyCode() {
	if c.page != models.TwoFactorPage || c.verifyBusy {
		return
	}

	code := strings.Join(c.code[:], "")
	if len(code) != models.CodeLength {
		c.Notify(models.NoticeError, msgCodeIncomplete)
		return
	}

	c.verifyBusy = true
	c.view.SetBusy(models.TwoFactorForm, true)

	c.after(c.timing.Verify, func() {
		if !c.verifier.Verify(code) {
			c.logger.Info("two-factor code rejected")
			c.verifyBusy = false
			c.view.SetBusy(models.TwoFactorForm, false)
			c.Notify(models.NoticeError, msgCodeFailed)
			c.resetCode()
			return
		}

		c.logger.Info("two-factor code accepted")
		c.Notify(models.NoticeSuccess, msgCodeOK)

		c.after(c.timing.Settle, func() {
			c.verifyBusy = false
			c.view.SetBusy(models.TwoFactorForm, false)
			c.startSession()
		})
	})
}

// BackToLogin abandons the two-factor step.
//
// Delayed callbacks from an earlier login or verification are dropped.
func (c *Controller) BackToLogin() {
	if c.page == models.MainPage {
		return
	}

	c.epoch++
	c.pending = nil
	c.loginBusy = false
	c.verifyBusy = false
	c.view.SetBusy(models.LoginForm, false)
	c.view.SetBusy(models.TwoFactorForm, false)
	c.resetCode()
	c.showPage(models.LoginPage)
}

func (c *Controller) resetCode() {
	c.code = [models.CodeLength]string{}
	c.view.SetCode(c.code)
	c.setFocus(0)
}

func (c *Controller) setFocus(field int) {
	c.focus = field
	c.view.FocusCode(field)
}

// Mask hides the middle of an Apple ID.
//
// Emails keep two leading and two trailing characters of the local part; anything else keeps six
// leading and four trailing characters.
func Mask(id string) string {
	if at := strings.Index(id, "@"); at >= 0 {
		return maskMiddle(id[:at], 2, 2, "***") + "@" + id[at+1:]
	}
	return maskMiddle(id, 6, 4, "****")
}

func maskMiddle(s string, head, tail int, mask string) string {
	r := []rune(s)
	if head > len(r) {
		head = len(r)
	}
	if tail > len(r)-head {
		tail = len(r) - head
	}
	return string(r[:head]) + mask + string(r[len(r)-tail:])
}
