/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package epc decodes SGTIN-96 and SGTIN-198 tag data, as defined by the EPC
// Tag Data Standard 1.12, and turns it into GS1 Application Identifier values
// so a tag read can become an element string or a Digital Link.
//
// An EPC names one thing. SGTIN-96 and SGTIN-198 are two binary encodings of
// the same SGTIN, and the Pure Identity URI is its encoding-free text form:
// two tags carry the same EPC exactly when their Pure Identity URIs match.
// The filter and partition are properties of the binary encoding, so they
// don't survive the trip through SGTIN.URI or SGTIN.Values.
//
// Tag memory can hold anything, so decoding only proves the bits could be
// split into SGTIN fields. ValidateRanges says whether those fields are an
// SGTIN GS1 would accept.
//
// The package also holds the 7-bit ISO 646 reader used for SGTIN-198 serials,
// and the escaping rules for serials in Pure Identity URIs.
//
// References:
//   - https://www.gs1.org/standards/epcrfid-epcis-id-keys/epc-rfid-tds/1-12
//   - https://www.gs1.org/sites/default/files/docs/epc/GS1_EPC_TDS_i1_12.pdf
//   - https://www.gs1.org/sites/default/files/docs/barcodes/GS1_General_Specifications.pdf
package epc
