// Package outreach processes slices of a recipient directory, running the
// email agent once per recipient that has not been contacted yet. Slices are
// half-open index ranges over customer_<index>.json files, so several
// processors can cover a directory without coordinating.
package outreach
