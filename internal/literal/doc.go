// Package literal turns raw command-line numbers into int64 values.
//
// Grammar:
//   - "0x" followed by base-16 digits is always hexadecimal.
//   - Anything else is tried as a signed base-10 number first.
//   - When the base-10 attempt fails the same text is retried as unsigned
//     base-16, so "1a" parses as 26. Callers learn about that through
//     Literal.FellBack and decide how to report it.
//
// Values are limited to the int64 range; there is no arbitrary precision.
package literal
