package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/Ahmed-hessen/E-shop/pkg/view"
	"github.com/Ahmed-hessen/E-shop/templates/components"
)

func Login(nav view.Nav, flash []view.Flash, returnTo string, form view.LoginForm, errs map[string]string, pageErr string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Render(ctx, components.Heading("Sign in to E~Shop", true))
		if pageErr != "" {
			hw.Raw(`<div class="form-error">`)
			hw.Text(pageErr)
			hw.Raw(`</div>`)
		}
		hw.Raw(`<form method="post" action="/login" class="auth-form">`)
		hw.Render(ctx, components.CSRFField(nav.CSRFToken))
		hw.Raw(`<input type="hidden" name="return_to" value="`)
		hw.Text(returnTo)
		hw.Raw(`"><label>Email<input type="email" name="email" value="`)
		hw.Text(form.Email)
		hw.Raw(`"></label>`)
		fieldError(hw, errs["email"])
		hw.Raw(`<label>Password<input type="password" name="password"></label>`)
		fieldError(hw, errs["password"])
		hw.Raw(`<button type="submit">Login</button></form>`)
		return hw.Err()
	})
	return Layout("Login", nav, flash, body)
}

func fieldError(hw *components.Writer, msg string) {
	if msg == "" {
		return
	}
	hw.Raw(`<small class="field-error">`)
	hw.Text(msg)
	hw.Raw(`</small>`)
}
