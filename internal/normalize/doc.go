// Package normalize converts raw page markup into plain, whitespace-collapsed
// text suitable for keyword and pattern matching.
//
// Design decision: We use golang.org/x/net/html for parsing rather than
// regex because:
//  1. It correctly handles malformed HTML common on the web
//  2. It lets us drop entire invisible subtrees (script/style/noscript)
//  3. More maintainable than complex regex patterns
package normalize
