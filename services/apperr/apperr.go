// Package apperr holds the error taxonomy shared by services and handlers.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	Internal Kind = iota
	Unauthenticated
	Forbidden
	NotFound
	InvalidInput
	Conflict
	InsufficientFunds
	InvalidOffer
	OfferExhausted
	NothingToClaim
	NotFriends
	InvalidItems
)

var kindNames = map[Kind]string{
	Internal:          "internal",
	Unauthenticated:   "unauthenticated",
	Forbidden:         "forbidden",
	NotFound:          "not_found",
	InvalidInput:      "invalid_input",
	Conflict:          "conflict",
	InsufficientFunds: "insufficient_funds",
	InvalidOffer:      "invalid_offer",
	OfferExhausted:    "offer_exhausted",
	NothingToClaim:    "nothing_to_claim",
	NotFriends:        "not_friends",
	InvalidItems:      "invalid_items",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error is a domain failure that handlers translate into a status code.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns Internal for anything that is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Status maps an error to the HTTP status code returned to the client.
func Status(err error) int {
	switch KindOf(err) {
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden, NotFriends:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case InvalidInput, InvalidOffer, OfferExhausted, NothingToClaim, InvalidItems:
		return http.StatusBadRequest
	case Conflict:
		return http.StatusConflict
	case InsufficientFunds:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
