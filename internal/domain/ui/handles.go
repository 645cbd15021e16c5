// Package ui declares the user interface handles the prediction form is wired to.
// Each front end (web page, terminal) provides its own implementation.
package ui

// SubmitControl is the control that triggers a submission
type SubmitControl interface {
	// OnClick registers fn to run on every click and returns a function that
	// removes the registration.
	OnClick(fn func()) (unsubscribe func())
}

// TextInput is the user-editable field holding the text to classify
type TextInput interface {
	Value() string
}

// Display is the result container the user reads outcome feedback from
type Display interface {
	SetText(text string)
	SetHidden(hidden bool)
}
