package mongoerr

import (
	"errors"

	"github.com/deppfellow/mongodb-errors/internal/errs"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

// Outcome describes which branch of the decoder produced a result.
type Outcome string

const (
	// OutcomeFinal: the error was already in presentation form.
	OutcomeFinal Outcome = "final"
	// OutcomeRecognized: a rule matched the driver message.
	OutcomeRecognized Outcome = "recognized"
	// OutcomeDriver: a driver error no rule recognised.
	OutcomeDriver Outcome = "driver"
	// OutcomeForeign: not a driver error, passed through.
	OutcomeForeign Outcome = "foreign"
)

// Observer is told about every decoded error. Category is empty for
// foreign errors and for final errors outside the taxonomy.
type Observer interface {
	ObserveDecode(outcome Outcome, category errs.Category)
}

// Decoder converts driver errors into presentation errors.
//
// A Decoder holds no mutable state and is safe for concurrent use.
type Decoder struct {
	logger   *zerolog.Logger
	observer Observer
}

// NewDecoder creates a Decoder. Both arguments are optional: a nil logger
// discards debug output and a nil observer records nothing.
func NewDecoder(logger *zerolog.Logger, observer Observer) *Decoder {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Decoder{logger: logger, observer: observer}
}

var defaultDecoder = NewDecoder(nil, nil)

// Resolve decodes err with the default decoder.
func Resolve(err error) error {
	return defaultDecoder.Resolve(err)
}

// Decode decodes err with the default decoder and delivers the result to fn.
func Decode(err error, fn func(error)) {
	defaultDecoder.Decode(err, fn)
}

// Decode resolves err and delivers the result to fn on a separate
// goroutine, so fn never runs before Decode returns control to its caller
// and is called exactly once. A nil fn has nowhere to deliver to, so
// nothing is decoded.
func (d *Decoder) Decode(err error, fn func(error)) {
	if fn == nil {
		d.logger.Warn().Err(err).Msg("decode called without a callback")
		return
	}
	go fn(d.Resolve(err))
}

// Resolve converts err and returns the result:
//   - nil stays nil
//   - errors already in presentation form are returned unchanged
//   - a message matching a rule becomes that rule's presentation error
//   - mongo.ErrNoDocuments becomes a 404
//   - any other driver error becomes a 500 exposing the driver message
//   - everything else is returned unchanged
//
// The input error is never modified.
func (d *Decoder) Resolve(err error) error {
	if err == nil {
		return nil
	}

	if isFinal(err) {
		d.logger.Debug().Msg("no decoding required")
		d.observe(OutcomeFinal, err)
		return err
	}

	msg := message(err)
	d.logger.Debug().Str("message", msg).Msg("decoding error message")

	var decoded *errs.HTTPError
	outcome := OutcomeRecognized

	switch mapping := Translate(msg); {
	case mapping != nil:
		decoded = mapping.HTTPError()
	case errors.Is(err, mongo.ErrNoDocuments):
		decoded = errs.NewNotFoundError("Document not found", false, nil)
	case IsDriverError(err):
		decoded = errs.NewDriverError(msg)
		outcome = OutcomeDriver
	default:
		d.logger.Debug().Msg("does not look like a driver error")
		d.observe(OutcomeForeign, err)
		return err
	}

	event := d.logger.Debug().
		Int("status", decoded.Status).
		Str("decoded", decoded.Error())
	if cmd := FailedCommand(err); cmd != "" {
		event = event.Str("command", cmd)
	}
	event.Msg("decoded error")

	d.observe(outcome, decoded)
	return decoded
}

func (d *Decoder) observe(outcome Outcome, err error) {
	if d.observer == nil {
		return
	}
	var category errs.Category
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		category, _ = errs.CategoryOf(httpErr)
	}
	d.observer.ObserveDecode(outcome, category)
}
