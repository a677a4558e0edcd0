/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind is the role an Application Identifier plays in a Digital Link.
type Kind int

const (
	// DataAttribute AIs are carried in the query string of a Digital Link.
	DataAttribute = Kind(iota)
	// Identifier AIs are primary keys; a Digital Link has exactly one.
	Identifier
	// Qualifier AIs refine an identifier and appear on the URI path after it.
	Qualifier
)

func (k Kind) String() string {
	switch k {
	case DataAttribute:
		return "data attribute"
	case Identifier:
		return "identifier"
	case Qualifier:
		return "qualifier"
	}
	return "unknown kind: " + strconv.Itoa(int(k))
}

// CharClass is the set of characters a value segment may hold.
type CharClass int

const (
	// Numeric segments hold only the digits 0-9.
	Numeric = CharClass(iota)
	// Alphanumeric segments hold characters from GS1 Character Set 82, or for
	// AI 8010, the Component/Part character set.
	Alphanumeric
)

func (c CharClass) String() string {
	if c == Numeric {
		return "N"
	}
	return "X"
}

// Segment describes one piece of an AI's value, as used by binary compression.
type Segment struct {
	Class CharClass
	// Fixed segments are exactly Length characters; otherwise Length is the max.
	Fixed  bool
	Length int
}

func n(l int) Segment  { return Segment{Class: Numeric, Fixed: true, Length: l} }
func nv(m int) Segment { return Segment{Class: Numeric, Length: m} }
func x(l int) Segment  { return Segment{Class: Alphanumeric, Fixed: true, Length: l} }
func xv(m int) Segment { return Segment{Class: Alphanumeric, Length: m} }

func (s Segment) String() string {
	if s.Fixed {
		return s.Class.String() + strconv.Itoa(s.Length)
	}
	return s.Class.String() + ".." + strconv.Itoa(s.Length)
}

// CheckDigit says where, if anywhere, an AI's value carries a GS1 check digit.
// Positive values are the 1-based position of the check digit in the value.
type CheckDigit int

const (
	NoCheckDigit = CheckDigit(0)
	// LastDigit means the check digit is the final character of the value.
	LastDigit = CheckDigit(-1)
)

const (
	charset82 = `[\x21-\x22\x25-\x3F\x41-\x5A\x5F\x61-\x7A]`
	digits    = `\d`
)

// Definition is the registry entry for a single Application Identifier.
type Definition struct {
	AI        string
	Title     string
	Label     string
	ShortCode string
	Kind      Kind
	// Format is the value format in GS1 notation, e.g. "N13+X..17".
	Format      string
	FixedLength bool
	CheckDigit  CheckDigit
	// Qualifiers lists, in path order, the AIs that may qualify an identifier.
	Qualifiers []string
	Segments   []Segment

	pattern string
	re      *regexp.Regexp
}

// Pattern returns the anchored regular expression a value must fully match.
func (d *Definition) Pattern() string {
	return d.re.String()
}

// MaxLength returns the maximum number of characters in the AI's value.
func (d *Definition) MaxLength() (l int) {
	for _, s := range d.Segments {
		l += s.Length
	}
	return
}

// HasQualifier returns true if code is one of d's declared qualifiers.
func (d *Definition) HasQualifier(code string) bool {
	for _, q := range d.Qualifiers {
		if q == code {
			return true
		}
	}
	return false
}

// segmentPattern builds the value pattern from the definition's segments.
func (d *Definition) segmentPattern() string {
	var sb strings.Builder
	for _, s := range d.Segments {
		sb.WriteByte('(')
		if s.Class == Numeric {
			sb.WriteString(digits)
		} else {
			sb.WriteString(charset82)
		}
		sb.WriteByte('{')
		if !s.Fixed {
			sb.WriteString("0,")
		}
		sb.WriteString(strconv.Itoa(s.Length))
		sb.WriteString("})")
	}
	return sb.String()
}

func (d *Definition) compile() {
	p := d.pattern
	if p == "" {
		p = d.segmentPattern()
	}
	d.re = regexp.MustCompile("^(?:" + p + ")$")
}
