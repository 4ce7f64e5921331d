package mongoerr

import (
	"regexp"

	"github.com/deppfellow/mongodb-errors/internal/errs"
)

// Mapping is the outcome of a matched rule: which category to build and
// with which message.
type Mapping struct {
	Category errs.Category
	Message  string
}

// HTTPError builds the presentation error for the mapping.
func (m *Mapping) HTTPError() *errs.HTTPError {
	return m.Category.New(m.Message)
}

// Rule pairs a pattern over the driver message with its outcome.
//
// An empty Message means the driver text is passed through unchanged.
type Rule struct {
	Pattern  *regexp.Regexp
	Category errs.Category
	Message  string
}

func rule(pattern string, category errs.Category, message string) Rule {
	return Rule{
		Pattern:  regexp.MustCompile(pattern),
		Category: category,
		Message:  message,
	}
}

// passthrough marks rules whose message is the driver text itself.
const passthrough = ""

// rules is evaluated top to bottom and the first match wins.
//
// Rule 10 lists "already exists" again; rule 8 shadows it, so only the
// "target namespace exists" phrase can reach it.
var rules = []Rule{
	rule(`connection closed`, errs.CategoryServerTimeout, "The connection to MongoDB was closed"),
	rule(`cannot drop`, errs.CategoryBadRequest, "This index cannot be destroyed"),
	rule(`(auth failed|Authentication Failed)`, errs.CategoryForbidden, "Invalid auth credentials"),
	rule(`(ECONNREFUSED|ENOTFOUND)`, errs.CategoryNotFound, "MongoDB not running on the provided host and port"),
	rule(`connection to \[.*\] timed out`, errs.CategoryNotFound, "Could not connect to MongoDB because the connection timed out"),
	rule(`failed to connect`, errs.CategoryNotFound, "Could not connect to MongoDB on the provided host and port"),
	rule(`does not exist`, errs.CategoryNotFound, passthrough),
	rule(`already exists`, errs.CategoryConflict, passthrough),
	rule(`pipeline element 0 is not an object`, errs.CategoryBadRequest, passthrough),
	rule(`(target namespace exists|already exists)`, errs.CategoryConflict, "Collection already exists"),
	rule(`server .* sockets closed`, errs.CategoryServerTimeout, "The connection to MongoDB was closed"),
	rule(`operation exceeded time limit`, errs.CategoryServerTimeout, "Operation exceeded the specified time limit"),
	rule(`Error from KDC: UNKNOWN_SERVER`, errs.CategoryServerTimeout, "Invalid service name"),
	rule(`Matching credential`, errs.CategoryBadRequest, "Invalid principal"),
	rule(`self signed certificate in certificate chain`, errs.CategoryBadRequest, "Invalid or missing certificate"),
	rule(`No credentials cache file found`, errs.CategoryBadRequest, "Kerberos not detected on provided connection details"),
	rule(`socket hang up`, errs.CategoryServerTimeout, "Socket could not establish connection to provided host and port"),
	rule(`BSONObj size`, errs.CategoryBadImplementation, "Response from server was too large to process"),
	rule(`no such cmd: top`, errs.CategoryBadRequest, "Top command is not available in mongos"),
}

// Rules returns a copy of the rule table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Translate maps a driver message to a category and a user-facing message.
//
// It returns nil when no rule matches.
func Translate(msg string) *Mapping {
	for _, r := range rules {
		if !r.Pattern.MatchString(msg) {
			continue
		}
		message := r.Message
		if message == passthrough {
			message = msg
		}
		return &Mapping{Category: r.Category, Message: message}
	}
	return nil
}
