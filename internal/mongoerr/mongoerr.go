// Package mongoerr turns MongoDB driver errors into errors for humans.
//
// It matches the driver's error text against an ordered rule table and
// converts recognised conditions into errs.HTTPError values with a safe,
// curated message (e.g. an "ECONNREFUSED" becomes a 404 "MongoDB not
// running on the provided host and port"). Unknown driver errors become a
// 500 that keeps the raw driver message; errors that are not from the
// driver at all are left alone.
package mongoerr
