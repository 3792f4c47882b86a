package tui

import (
	"github.com/kisaanlabs/kisaan-setu/models"
)

// NavigateTo switches the active page of [RootModel]. When Payload is set it
// is re-delivered as a message to the newly opened page.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login page after the async sign-in command
// completes. A nil Err ends the login flow.
type LoginResult struct {
	Err  error
	User models.UserRecord
}

// RegisterResult is produced by the registration page after the async
// register command completes. Registration never signs the user in; on
// success the page navigates back to the menu.
type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is shown on the menu after a successful registration.
type RegisterSuccessNotice struct {
	Username string
}

type weatherLoadedMsg struct {
	report models.WeatherReport
}

type signOutDoneMsg struct {
	err error
}
