package tui

import (
	"wishlist-cli/internal/model"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalAdd
	modalEdit
	modalConfirmDelete
	modalHelp
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// Form field order inside the add/edit modals. The add modal skips the name
// field (the server assigns names on create).
const (
	fieldName = iota
	fieldURL
	fieldPrice
	fieldCategory
	fieldCount
)

type itemsLoadedMsg struct {
	items []model.Item
	err   error
}

type itemCreatedMsg struct {
	item model.Item
	err  error
}

type itemUpdatedMsg struct {
	item model.Item
	// token is the edit-session token captured when the request was issued.
	// The store discards the response if the session changed in the meantime.
	token string
	err   error
}

type itemRemovedMsg struct {
	id  int64
	err error
}

type urlOpenDoneMsg struct {
	err error
}
