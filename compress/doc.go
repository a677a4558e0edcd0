/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package compress implements the binary encoding used by compressed GS1
// Digital Links.
//
// A compressed stream is a sequence of keys, each followed by its value. An AI
// key is its digits, one nibble each; the decoder knows how many digits to read
// from the first two, since every AI sharing two leading digits has the same
// length. A pair of nibbles outside 00-99 is instead a super-code standing for
// a group of AIs, whose values follow in a fixed order. A leading nibble of F
// flags a foreign (non-GS1) key/value pair.
//
// Values are packed according to the AI's segments:
//     N fixed:    the number in ceil(len*log2(10)) bits
//     N variable: length bits, then the number in ceil(n*log2(10)) bits
//     X fixed:    3 bit encoding selector, then the packed characters
//     X variable: 3 bit encoding selector, length bits, then the characters
// where the number of length bits is the number of bits needed to hold the
// segment's maximum length. The encoding selector picks the most compact of
// digits, lowercase hex, uppercase hex, URL-safe base64, or 7-bit ASCII.
//
// Foreign pairs are the F flag, a 7 bit key length, the key at 6 bits per
// character, then the value as a variable X segment with 7 length bits.
package compress
