// Package password validates corporate password-policy entries of the form
//
//	<low>-<high> <char>: <password>
//
// A Policy allows a password when char occurs between low and high times,
// inclusive. ParseEntry splits a line into its Policy and password;
// CountValid tallies a whole database.
//
// Errors:
//
//   - ErrMalformedEntry: a delimiter is missing, the policy character is not
//     exactly one rune, or a bound is not a number.
//   - ErrInvalidRange:   low > high.
package password
