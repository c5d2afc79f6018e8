// Package policy provides the encoding policies that control how values are
// rendered when form encoding.
//
// Each concern has an interface with a small set of named styles and a Func
// variant for caller supplied behavior:
//
//   - BoolEncoding: BoolNumeric ("1"/"0"), BoolLiteral ("true"/"false")
//   - DataEncoding: DataDeferred, DataBase64, DataFunc
//   - DateEncoding: DateDeferred, DateSeconds, DateMilliseconds, DateISO8601,
//     DateLayout, DateFunc
//   - NilEncoding: NilDropKey, NilDropValue, NilNull, NilFunc
//   - KeyEncoding: KeyAsIs, KeySnakeCase, KeyKebabCase, KeyCapitalized,
//     KeyUpperCase, KeyLowerCase, KeyFunc
//   - KeyPathEncoding: KeyPathBrackets ("[sub]"), KeyPathDots (".sub"), KeyPathFunc
//   - ArrayEncoding: ArrayBrackets ("key[]"), ArrayNoBrackets ("key"),
//     ArrayIndexInBrackets ("key[0]"), ArrayFunc
//   - SpaceEncoding: SpacePercentEscaped ("%20"), SpacePlusReplaced ("+")
//
// Named styles have String, MarshalText and UnmarshalText methods so they can
// be read from configuration files and command line flags.
//
// Policies that may decline to produce a value return ok == false, in which
// case the caller falls back to its default behavior (for data and dates) or
// omits the entry (for nil).
package policy
