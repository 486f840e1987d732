// Package compile is the schema-aware transformation pipeline that rewrites
// collected GraphQL documents before code generation. A compile runs an
// ordered list of passes over one document store; each pass mutates selection
// sets in place and reports diagnostics. Advisory diagnostics accumulate
// across the whole list, the first fatal diagnostic truncates it.
//
// The pipeline is deterministic and networkless: same schema and documents
// in, same transformed documents and diagnostics out.
package compile
