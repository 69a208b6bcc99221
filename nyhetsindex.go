// Package nyhetsindex provides semantic search over municipal news.
// It scrapes the news listing of a municipality website, extracts
// structured article records via HTML heuristics, embeds them, and
// indexes the vectors for nearest-neighbor search over HTTP.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// pinecone/, sqlite/).
package nyhetsindex
