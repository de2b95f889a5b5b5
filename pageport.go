// Package pageport converts a designated region of an HTML page into Markdown
// and, optionally, into a static-site page with a small front-matter header.
//
// A SelectorConfig names the content region and the nodes to strip or flatten.
// The importer package runs the locate → sanitize → convert pipeline against a
// parsed Document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmlquery/, htmltomarkdown/).
package pageport
