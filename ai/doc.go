/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package ai is a registry of GS1 Application Identifiers (AIs) along with the
// validators for their values.
//
// An AI is a 2-4 digit numeric prefix that says what the data following it
// means: (01) is a GTIN, (10) a batch or lot number, (3103) a net weight in kg
// with three decimal places, and so on. Every AI shares its length with every
// other AI that starts with the same two digits, which is what makes it possible
// to split an unbracketed element string without delimiters around the codes.
//
// Within a GS1 Digital Link, AIs play one of three roles: a single primary
// Identifier (such as a GTIN or SSCC), Qualifiers that refine that identifier
// (a GTIN's batch and serial number), and Data Attributes that carry everything
// else. See the GS1 Digital Link standard for details:
// - https://www.gs1.org/standards/gs1-digital-link
// - https://www.gs1.org/sites/default/files/docs/barcodes/GS1_General_Specifications.pdf
//
// Values are checked in two stages: first against a pattern derived from the
// AI's format, then, for AIs that have one, against the GS1 check digit, which
// is computed with alternating weights of 3 and 1 from the right.
package ai
