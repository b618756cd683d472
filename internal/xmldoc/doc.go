// Package xmldoc loads untrusted XML into a queryable tree and answers
// namespace-aware path queries against it.
//
// Load is the security boundary of the whole pipeline: any DOCTYPE
// declaration is refused before the tree is built, and external entities are
// never resolved. Document then exposes WordPress export queries scoped to
// the wp, excerpt, content and dc namespaces, defaulting the wp and excerpt
// URIs when an export does not declare them.
package xmldoc
