/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-digitallink/ai"
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

// SGTINPureURIPrefix starts every SGTIN Pure Identity URI.
const SGTINPureURIPrefix = "urn:epc:id:sgtin:"

// MaxSerialLength is the longest serial (21) value GS1 allows.
const MaxSerialLength = 20

// gtinBodyDigits counts the company prefix and item reference digits that,
// together with the indicator, precede a GTIN-14's check digit.
const gtinBodyDigits = 12

// SGTIN is a serialized GTIN. In element strings and Digital Links it's the
// pair of AIs (01) and (21); on an RFID tag it's an SGTIN-96 or SGTIN-198.
//
// The partition splits the 12 body digits between the company prefix and the
// item reference, so numeric fields are held as integers and zero-padded to
// their partition's widths on output. Serials stay strings: "7" and "007"
// are different serials.
type SGTIN struct {
	filter    FilterValue
	partition int

	indicator     int
	companyPrefix int
	itemRef       int
	serial        string
}

// NewSGTIN returns an SGTIN built from its parts, along with the result of
// ValidateRanges. The SGTIN is returned even when the error is non-nil.
func NewSGTIN(filter FilterValue, partition, indicator, companyPrefix, itemRef int, serial string) (SGTIN, error) {
	s := SGTIN{
		filter:        filter,
		partition:     partition,
		indicator:     indicator,
		companyPrefix: companyPrefix,
		itemRef:       itemRef,
		serial:        serial,
	}
	return s, s.ValidateRanges()
}

func (s *SGTIN) Serial() string { return s.serial }
func (s *SGTIN) Filter() FilterValue { return s.filter }
func (s *SGTIN) Partition() int { return s.partition }
func (s *SGTIN) Indicator() int { return s.indicator }
func (s *SGTIN) CompanyPrefix() string { return pad(s.companyPrefix, gtinBodyDigits-s.partition) }

// ItemReference returns the item reference without its indicator digit.
// Partition 0 has no item reference digits, so it returns "".
func (s *SGTIN) ItemReference() string {
	if s.partition <= 0 {
		return ""
	}
	return pad(s.itemRef, s.partition)
}

func pad(v, width int) string {
	return fmt.Sprintf("%0*d", width, v)
}

// rangeCheck reports a problem with one SGTIN field, or "" if it's fine.
type rangeCheck func(s *SGTIN) string

var rangeChecks = []rangeCheck{
	func(s *SGTIN) string {
		if s.indicator < 0 || s.indicator > 9 {
			return fmt.Sprintf("indicator %d is not a single digit", s.indicator)
		}
		return ""
	},
	func(s *SGTIN) string {
		if !s.filter.IsValid() {
			return fmt.Sprintf("filter %d is reserved or out of range", s.filter)
		}
		return ""
	},
	func(s *SGTIN) string {
		if s.partition < 0 || s.partition >= len(partitions) {
			return fmt.Sprintf("partition %d is not in [0, %d]", s.partition, len(partitions)-1)
		}
		p := partitions[s.partition]
		if s.itemRef < 0 || s.itemRef >= p.itemRefs {
			return fmt.Sprintf("item reference %d does not fit in %d digits",
				s.itemRef, s.partition)
		}
		if s.companyPrefix < 0 || s.companyPrefix > p.maxPrefix {
			return fmt.Sprintf("company prefix %d does not fit in %d digits",
				s.companyPrefix, gtinBodyDigits-s.partition)
		}
		return ""
	},
	func(s *SGTIN) string {
		switch {
		case s.serial == "":
			return "serial is empty"
		case len(s.serial) > MaxSerialLength:
			return fmt.Sprintf("serial has %d characters; the limit is %d",
				len(s.serial), MaxSerialLength)
		}
		return ""
	},
}

// ValidateRanges returns an error if a field doesn't fit its range, or the
// serial isn't a valid (21) value.
//
// Fitting the fields doesn't make the GTIN a legal one: GS1 restricts some
// prefixes, such as restricted circulation numbers, that still encode.
func (s SGTIN) ValidateRanges() error {
	for _, check := range rangeChecks {
		if msg := check(&s); msg != "" {
			return errors.New("invalid SGTIN: " + msg)
		}
	}
	if err := ai.VerifySyntax("21", s.serial); err != nil {
		return errors.Wrapf(err, "invalid SGTIN serial %q", s.serial)
	}
	return nil
}

// CanSGTIN96 returns nil if the serial fits the SGTIN-96 encoding: a decimal
// number below 2^38 written without leading zeros, or exactly "0".
func (s SGTIN) CanSGTIN96() error {
	if s.serial == "" {
		return errors.New("serial is empty")
	}
	if _, err := strconv.ParseUint(s.serial, 10, serial96Bits); err != nil {
		return errors.Wrapf(err, "SGTIN-96 serial %q is not a %d bit number",
			s.serial, serial96Bits)
	}
	if len(s.serial) > 1 && s.serial[0] == '0' {
		return errors.Errorf("SGTIN-96 serial %q has a leading zero", s.serial)
	}
	return nil
}

// GTIN returns the GTIN-14 with its check digit.
func (s SGTIN) GTIN() string {
	body := strconv.Itoa(s.indicator) + s.CompanyPrefix() + s.ItemReference()
	cd, err := ai.ComputeCheckDigit("01", body)
	if err != nil {
		return body
	}
	return body + strconv.Itoa(cd)
}

// Values returns the SGTIN's GTIN (01) and serial (21).
func (s SGTIN) Values() ai.Values {
	return ai.Values{"01": s.GTIN(), "21": s.serial}
}

// URI returns the Pure Identity form,
//
//	urn:epc:id:sgtin:CompanyPrefix.IndicatorItemReference.Serial
//
// with the serial escaped by EscapeGS1.
func (s SGTIN) URI() string {
	var sb strings.Builder
	sb.WriteString(SGTINPureURIPrefix)
	sb.WriteString(s.CompanyPrefix())
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(s.indicator))
	sb.WriteString(s.ItemReference())
	sb.WriteByte('.')
	sb.WriteString(EscapeGS1(s.serial))
	return sb.String()
}

// ParseSGTINURI is the inverse of URI. The company prefix's length gives the
// partition; the filter, which the URI doesn't carry, is Other. The result is
// checked with ValidateRanges.
func ParseSGTINURI(uri string) (SGTIN, error) {
	rest := strings.TrimPrefix(uri, SGTINPureURIPrefix)
	if rest == uri {
		return SGTIN{}, errors.Errorf("%q is not an SGTIN URI", uri)
	}

	parts := strings.SplitN(rest, ".", 3)
	if len(parts) != 3 {
		return SGTIN{}, errors.Errorf("SGTIN URI %q needs 3 dot-separated parts", uri)
	}
	gcp, iir := parts[0], parts[1]
	if !ai.IsNumeric(gcp) || !ai.IsNumeric(iir) || len(gcp)+len(iir) != gtinBodyDigits+1 {
		return SGTIN{}, errors.Errorf("SGTIN URI %q needs 13 digits of company "+
			"prefix, indicator and item reference", uri)
	}

	p := gtinBodyDigits - len(gcp)
	if p < 0 || p >= len(partitions) {
		return SGTIN{}, errors.Errorf("company prefix %q has no partition", gcp)
	}
	prefix, _ := strconv.Atoi(gcp)
	itemRef := 0
	if p > 0 {
		itemRef, _ = strconv.Atoi(iir[1:])
	}
	return NewSGTIN(Other, p, int(iir[0]-'0'), prefix, itemRef, UnescapeGS1(parts[2]))
}
