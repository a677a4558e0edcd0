/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package dlink builds and parses GS1 Digital Link URIs, in their
// uncompressed, partially compressed, and fully compressed forms.
//
// An uncompressed Digital Link names a primary identifier and its qualifiers
// in the path, and carries other AIs in the query string:
//     https://id.gs1.org/01/09506000134352/10/ABC?17=201231
// A compressed one replaces the path with the base64 form of a compressed
// bit stream (see package compress), optionally after a legible identifier:
//     https://id.gs1.org/CxFKk4XBoI1XgkY
//     https://id.gs1.org/01/09506000134352/CCNV4JG
package dlink
