// Package validate implements the resource validators: filesystem
// paths and remote URLs, plus the HTML document-type heuristic.
//
// Validators are stateless and total. Exists answers "is it there":
// a stat for paths, a header-only request for URLs. Validate answers
// "is it what we expect": paths have nothing deeper to check yet, so
// it delegates to Exists; for URLs it fetches the resource and looks
// for the doctype declaration on the first line. Probe errors are
// collapsed to false, never propagated; pass a logger via WithLogger
// to see why a probe said no.
package validate
