// Package pagemeta extracts structured metadata (title, byline, excerpt,
// character encoding) from HTML pages. It reads attribute-pattern matches on
// meta tags first and falls back to heuristics over the document's own title
// and heading structure.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, readability/, sqlite/).
package pagemeta
